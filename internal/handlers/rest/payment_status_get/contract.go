//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_get_test
package payment_status_get

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPaymentStatus(ctx context.Context, shipmentID int64) (*entities.PaymentProjection, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_refund_post_test
package payment_refund_post

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
	RefundPayment(ctx context.Context, shipmentID int64, reason string, amount *float64, adminID string) (*entities.Shipment, error)
}

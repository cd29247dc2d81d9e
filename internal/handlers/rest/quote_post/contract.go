//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_post_test
package quote_post

import (
	"time"

	"shipping/internal/entities"
	"shipping/internal/service/shipment"
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
	QuoteShipment(shipmentType entities.ShipmentType, insuranceType entities.InsuranceType, packages []entities.Package, pickupDate time.Time) (*shipment.Quote, error)
}

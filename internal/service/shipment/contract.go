//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentEntity *entities.Shipment) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	Save(ctx context.Context, shipmentEntity *entities.Shipment) (*entities.Shipment, error)
	List(ctx context.Context, filter entities.ShipmentFilter, page entities.Page) ([]entities.Shipment, error)
	Count(ctx context.Context, filter entities.ShipmentFilter) (int64, error)
	DeleteDraft(ctx context.Context, id int64) error
	DeleteDraftsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type PricingFactory interface {
	ShippingCost(
		shipmentType entities.ShipmentType,
		insuranceType entities.InsuranceType,
		packages []entities.Package,
	) entities.Cost
}

type DeliveryEstimator interface {
	EstimateDeliveryDate(
		shipmentType entities.ShipmentType,
		packages []entities.Package,
		pickupDate time.Time,
	) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

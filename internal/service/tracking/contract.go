//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	Save(ctx context.Context, shipmentEntity *entities.Shipment) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

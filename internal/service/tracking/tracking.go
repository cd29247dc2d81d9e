package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shipping/internal/entities"
)

// Service applies carrier scan events to shipments. Statuses only move
// forward through the delivery progression; late or duplicate scans are
// skipped without error so the consumer can ack them.
type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

var defaultDescriptions = map[entities.ShipmentStatusType]string{
	entities.ShipmentPickedUp:       "Shipment picked up by carrier",
	entities.ShipmentInTransit:      "Shipment in transit",
	entities.ShipmentOutForDelivery: "Shipment out for delivery",
	entities.ShipmentDelivered:      "Shipment delivered",
}

func (s *Service) ProcessTrackingEvent(ctx context.Context, event entities.TrackingEvent) (*entities.Shipment, error) {
	if strings.TrimSpace(event.TrackingNumber) == "" {
		return nil, ErrInvalidTrackingNumber
	}
	if _, ok := defaultDescriptions[event.Status]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, event.Status)
	}

	var result *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByTrackingNumber(ctx, event.TrackingNumber)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}

		// cancelled shipments and stale scans are acked without changes
		if shipmentEntity.Status == entities.ShipmentCancelled ||
			event.Status.StatusRank() <= shipmentEntity.Status.StatusRank() {
			result = shipmentEntity
			return nil
		}

		occurredAt := event.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = time.Now().UTC()
		}

		description := event.Description
		if description == "" {
			description = defaultDescriptions[event.Status]
		}

		shipmentEntity.Status = event.Status
		shipmentEntity.AppendTimeline(event.Status, event.Location, description, occurredAt)

		if event.Status == entities.ShipmentDelivered {
			shipmentEntity.Delivery.ActualDate = &occurredAt
		}

		result, err = s.repository.Save(ctx, shipmentEntity)
		if err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

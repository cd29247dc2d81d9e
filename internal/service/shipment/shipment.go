package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
)

const (
	trackingNumberPrefix = "SHP"

	minDraftStep = 1
	maxDraftStep = 7

	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Service struct {
	repository Repository
	pricing    PricingFactory
	estimator  DeliveryEstimator
	txManager  TxManager
}

func New(
	repository Repository,
	pricing PricingFactory,
	estimator DeliveryEstimator,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		pricing:    pricing,
		estimator:  estimator,
		txManager:  txManager,
	}
}

// Quote is the cost and delivery estimate for a not-yet-persisted shipment.
type Quote struct {
	Cost              entities.Cost
	EstimatedDelivery time.Time
}

func (s *Service) QuoteShipment(
	shipmentType entities.ShipmentType,
	insuranceType entities.InsuranceType,
	packages []entities.Package,
	pickupDate time.Time,
) (*Quote, error) {
	if !isValidShipmentType(shipmentType) {
		return nil, ErrInvalidShipmentType
	}
	if !isValidInsuranceType(insuranceType) {
		return nil, ErrInvalidInsuranceType
	}
	if err := validatePackages(packages); err != nil {
		return nil, err
	}
	if err := validatePickupDate(pickupDate, time.Now().UTC()); err != nil {
		return nil, err
	}

	return &Quote{
		Cost:              s.pricing.ShippingCost(shipmentType, insuranceType, packages),
		EstimatedDelivery: s.estimator.EstimateDeliveryDate(shipmentType, packages, pickupDate),
	}, nil
}

func (s *Service) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	isDraft := shipmentModify.IsDraft != nil && *shipmentModify.IsDraft

	shipmentEntity := &entities.Shipment{
		Status:  entities.ShipmentPending,
		IsDraft: isDraft,
		Payment: entities.Payment{
			Status: entities.PaymentPending,
		},
	}
	applyModify(shipmentEntity, &shipmentModify)

	if isDraft {
		if shipmentModify.LastSavedStep == nil {
			shipmentEntity.LastSavedStep = minDraftStep
		}
		if shipmentEntity.LastSavedStep < minDraftStep || shipmentEntity.LastSavedStep > maxDraftStep {
			return nil, ErrInvalidLastSavedStep
		}
	} else {
		if err := s.prepareForCommit(shipmentEntity); err != nil {
			return nil, err
		}
	}

	created, err := s.repository.Create(ctx, shipmentEntity)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateShipment(
	ctx context.Context,
	id int64,
	shipmentModify entities.ShipmentModify,
	requesterID *int64,
) (*entities.Shipment, error) {
	var updated *entities.Shipment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}

		if !shipmentEntity.IsDraft {
			if !isOwner(shipmentEntity, requesterID) {
				return ErrNotOwner
			}
			if shipmentEntity.Payment.Status != entities.PaymentPending {
				return ErrShipmentLocked
			}
		}

		wasDraft := shipmentEntity.IsDraft

		// Commit is a one-way door: once a shipment carries a tracking
		// number it can never become a draft again.
		if !wasDraft && shipmentModify.IsDraft != nil && *shipmentModify.IsDraft {
			return ErrShipmentCommitted
		}

		applyModify(shipmentEntity, &shipmentModify)

		if shipmentEntity.IsDraft {
			if shipmentEntity.LastSavedStep < minDraftStep || shipmentEntity.LastSavedStep > maxDraftStep {
				return ErrInvalidLastSavedStep
			}
		}

		committing := wasDraft && !shipmentEntity.IsDraft
		if committing {
			if err := s.prepareForCommit(shipmentEntity); err != nil {
				return err
			}
		} else if !shipmentEntity.IsDraft {
			if err := validateShipmentDetails(shipmentEntity); err != nil {
				return err
			}
			if shipmentModify.Pickup != nil {
				if err := validatePickupDate(shipmentEntity.Pickup.Date, time.Now().UTC()); err != nil {
					return err
				}
			}
			if needsRequote(&shipmentModify) {
				shipmentEntity.Cost = s.pricing.ShippingCost(
					shipmentEntity.Type,
					shipmentEntity.Insurance.Type,
					shipmentEntity.Packages,
				)
				shipmentEntity.Delivery.EstimatedDate = s.estimator.EstimateDeliveryDate(
					shipmentEntity.Type,
					shipmentEntity.Packages,
					shipmentEntity.Pickup.Date,
				)
			}
		}

		updated, err = s.repository.Save(ctx, shipmentEntity)
		if err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	shipmentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipmentEntity, nil
}

func (s *Service) GetShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNum
	}

	shipmentEntity, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment by tracking number: %w", err)
	}
	return shipmentEntity, nil
}

func (s *Service) ListShipments(
	ctx context.Context,
	filter entities.ShipmentFilter,
	page entities.Page,
) ([]entities.Shipment, int64, error) {
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	shipments, err := s.repository.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list shipments: %w", err)
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count shipments: %w", err)
	}

	return shipments, total, nil
}

func (s *Service) DeleteDraft(ctx context.Context, id int64, requesterID *int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}

		if !shipmentEntity.IsDraft {
			return ErrNotDraft
		}
		if shipmentEntity.OwnerID != nil && !isOwner(shipmentEntity, requesterID) {
			return ErrNotOwner
		}

		if err := s.repository.DeleteDraft(ctx, id); err != nil {
			return fmt.Errorf("delete draft: %w", err)
		}
		return nil
	})
}

func (s *Service) CleanupExpiredDrafts(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)

	removed, err := s.repository.DeleteDraftsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup drafts: %w", err)
	}
	return removed, nil
}

// prepareForCommit validates a complete shipment, prices it and assigns the
// tracking number. The tracking number is assigned exactly once, at the
// moment the shipment stops being a draft, and never changes afterwards.
func (s *Service) prepareForCommit(shipmentEntity *entities.Shipment) error {
	if err := validateShipmentDetails(shipmentEntity); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := validatePickupDate(shipmentEntity.Pickup.Date, now); err != nil {
		return err
	}

	shipmentEntity.Cost = s.pricing.ShippingCost(
		shipmentEntity.Type,
		shipmentEntity.Insurance.Type,
		shipmentEntity.Packages,
	)
	shipmentEntity.Delivery.EstimatedDate = s.estimator.EstimateDeliveryDate(
		shipmentEntity.Type,
		shipmentEntity.Packages,
		shipmentEntity.Pickup.Date,
	)

	if shipmentEntity.TrackingNumber == "" {
		shipmentEntity.TrackingNumber = newTrackingNumber()
		shipmentEntity.AppendTimeline(entities.ShipmentPending, shipmentEntity.Pickup.Location, "Shipment created", now)
	}
	shipmentEntity.LastSavedStep = 0

	return nil
}

func newTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", trackingNumberPrefix, strings.ToUpper(raw[:12]))
}

func isOwner(shipmentEntity *entities.Shipment, requesterID *int64) bool {
	return shipmentEntity.OwnerID != nil &&
		requesterID != nil &&
		*shipmentEntity.OwnerID == *requesterID
}

// needsRequote reports whether the change touches anything the cost or the
// delivery estimate depends on.
func needsRequote(m *entities.ShipmentModify) bool {
	return m.Type != nil || m.Packages != nil || m.Insurance != nil || m.Pickup != nil
}

func applyModify(shipmentEntity *entities.Shipment, m *entities.ShipmentModify) {
	if m.OwnerID != nil {
		shipmentEntity.OwnerID = m.OwnerID
	}
	if m.Type != nil {
		shipmentEntity.Type = *m.Type
	}
	if m.Sender != nil {
		shipmentEntity.Sender = *m.Sender
	}
	if m.Recipient != nil {
		shipmentEntity.Recipient = *m.Recipient
	}
	if m.Packages != nil {
		shipmentEntity.Packages = *m.Packages
	}
	if m.Pickup != nil {
		shipmentEntity.Pickup = *m.Pickup
	}
	if m.Delivery != nil {
		shipmentEntity.Delivery = *m.Delivery
	}
	if m.Insurance != nil {
		shipmentEntity.Insurance = *m.Insurance
	}
	if m.IsDraft != nil {
		shipmentEntity.IsDraft = *m.IsDraft
	}
	if m.LastSavedStep != nil {
		shipmentEntity.LastSavedStep = *m.LastSavedStep
	}
}

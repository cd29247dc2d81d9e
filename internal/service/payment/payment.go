package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

// Service drives the bank transfer lifecycle of a shipment:
// pending -> awaiting_verification -> {completed | failed},
// completed -> refunded. failed and refunded are terminal; a refund also
// cancels the shipment.
type Service struct {
	log           logger.Logger
	repository    Repository
	users         UserService
	notifications NotificationService
	mailer        Mailer
	broadcaster   Broadcaster
	txManager     TxManager
}

func New(
	log logger.Logger,
	repository Repository,
	users UserService,
	notifications NotificationService,
	mailer Mailer,
	broadcaster Broadcaster,
	txManager TxManager,
) *Service {
	return &Service{
		log:           log.With(),
		repository:    repository,
		users:         users,
		notifications: notifications,
		mailer:        mailer,
		broadcaster:   broadcaster,
		txManager:     txManager,
	}
}

func (s *Service) InitializePayment(
	ctx context.Context,
	shipmentID int64,
	bankDetails entities.BankDetails,
) (*entities.Shipment, error) {
	if strings.TrimSpace(bankDetails.AccountName) == "" || strings.TrimSpace(bankDetails.BankName) == "" {
		return nil, ErrMissingBankDetails
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}
		if shipmentEntity.IsDraft {
			return ErrDraftShipment
		}
		if shipmentEntity.Payment.Status != entities.PaymentPending {
			return ErrInvalidPaymentState
		}

		now := time.Now().UTC()
		shipmentEntity.Payment.Status = entities.PaymentAwaitingVerification
		shipmentEntity.Payment.Method = entities.PaymentMethodBankTransfer
		shipmentEntity.Payment.Amount = shipmentEntity.Cost.Total
		shipmentEntity.Payment.BankDetails = bankDetails
		shipmentEntity.Payment.CreatedAt = &now

		updated, err = s.repository.Save(ctx, shipmentEntity)
		if err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitPaymentEvent(ctx, updated, entities.NotificationPaymentVerificationRequested, func(user *entities.User) error {
		return s.mailer.SendPaymentVerificationRequested(ctx, updated, user)
	})

	return updated, nil
}

func (s *Service) VerifyPayment(
	ctx context.Context,
	shipmentID int64,
	verified bool,
	notes string,
	rejectionReason string,
	adminID string,
) (*entities.Shipment, error) {
	if !verified && strings.TrimSpace(rejectionReason) == "" {
		return nil, ErrMissingRejectionReason
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}
		if shipmentEntity.Payment.Status != entities.PaymentAwaitingVerification {
			return ErrInvalidPaymentState
		}

		now := time.Now().UTC()
		shipmentEntity.Payment.VerifiedAt = &now
		shipmentEntity.Payment.VerifiedBy = adminID
		shipmentEntity.Payment.Notes = notes

		if verified {
			shipmentEntity.Payment.Status = entities.PaymentCompleted
			shipmentEntity.Status = entities.ShipmentAwaitingPickup
			shipmentEntity.AppendTimeline(
				entities.ShipmentAwaitingPickup,
				shipmentEntity.Pickup.Location,
				"Payment verified, shipment ready for pickup",
				now,
			)
		} else {
			shipmentEntity.Payment.Status = entities.PaymentFailed
			shipmentEntity.Payment.RejectionReason = rejectionReason
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

	if verified {
		s.emitPaymentEvent(ctx, updated, entities.NotificationPaymentConfirmed, func(user *entities.User) error {
			return s.mailer.SendPaymentConfirmation(ctx, updated, user)
		})
	} else {
		s.emitPaymentEvent(ctx, updated, entities.NotificationPaymentRejected, func(user *entities.User) error {
			return s.mailer.SendPaymentRejectionNotification(ctx, updated, user, rejectionReason)
		})
	}

	return updated, nil
}

func (s *Service) RefundPayment(
	ctx context.Context,
	shipmentID int64,
	reason string,
	amount *float64,
	adminID string,
) (*entities.Shipment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingRefundReason
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("load shipment: %w", err)
		}
		if shipmentEntity.Payment.Status != entities.PaymentCompleted {
			return ErrInvalidPaymentState
		}
		if shipmentEntity.Payment.Refunded {
			return fmt.Errorf("%w: %w", ErrInvalidPaymentState, ErrAlreadyRefunded)
		}

		refundAmount := shipmentEntity.Cost.Total
		if amount != nil {
			if *amount <= 0 || *amount > shipmentEntity.Payment.Amount {
				return ErrInvalidRefundAmount
			}
			refundAmount = *amount
		}

		now := time.Now().UTC()
		shipmentEntity.Payment.Status = entities.PaymentRefunded
		shipmentEntity.Payment.Refunded = true
		shipmentEntity.Payment.RefundedAt = &now
		shipmentEntity.Payment.RefundedBy = adminID
		shipmentEntity.Payment.RefundReason = reason
		shipmentEntity.Payment.RefundAmount = refundAmount

		shipmentEntity.Status = entities.ShipmentCancelled
		shipmentEntity.AppendTimeline(
			entities.ShipmentCancelled,
			"",
			fmt.Sprintf("Shipment cancelled, payment refunded: %s", reason),
			now,
		)

		updated, err = s.repository.Save(ctx, shipmentEntity)
		if err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitPaymentEvent(ctx, updated, entities.NotificationPaymentRefunded, func(user *entities.User) error {
		return s.mailer.SendRefundConfirmation(ctx, updated, user, updated.Payment.RefundAmount, reason)
	})

	return updated, nil
}

// GetPaymentStatus is a pure read of the payment sub-record.
func (s *Service) GetPaymentStatus(ctx context.Context, shipmentID int64) (*entities.PaymentProjection, error) {
	shipmentEntity, err := s.repository.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("load shipment: %w", err)
	}

	p := shipmentEntity.Payment
	return &entities.PaymentProjection{
		ShipmentID:      shipmentEntity.ID,
		Status:          p.Status,
		Method:          p.Method,
		Amount:          p.Amount,
		BankDetails:     p.BankDetails,
		CreatedAt:       p.CreatedAt,
		VerifiedAt:      p.VerifiedAt,
		VerifiedBy:      p.VerifiedBy,
		Notes:           p.Notes,
		RejectionReason: p.RejectionReason,
		Refunded:        p.Refunded,
		RefundedAt:      p.RefundedAt,
		RefundedBy:      p.RefundedBy,
		RefundReason:    p.RefundReason,
		RefundAmount:    p.RefundAmount,
		CostTotal:       shipmentEntity.Cost.Total,
	}, nil
}

// emitPaymentEvent fans the transition out to the owner: stored
// notification, email job and websocket push. All three are best-effort;
// the committed transition is never rolled back because of them.
// Guest shipments have no owner and get no fan-out.
func (s *Service) emitPaymentEvent(
	ctx context.Context,
	shipmentEntity *entities.Shipment,
	notificationType entities.NotificationType,
	sendMail func(user *entities.User) error,
) {
	if shipmentEntity.OwnerID == nil {
		return
	}
	ownerID := *shipmentEntity.OwnerID

	eventLog := s.log.With(
		logger.NewField("shipment", shipmentEntity.ID),
		logger.NewField("payment_status", shipmentEntity.Payment.Status.String()),
	)

	priority := entities.PriorityHigh
	if _, err := s.notifications.CreateNotification(ctx, entities.NotificationModify{
		UserID: &ownerID,
		Type:   &notificationType,
		Data: map[string]interface{}{
			"shipment_id":     shipmentEntity.ID,
			"tracking_number": shipmentEntity.TrackingNumber,
			"amount":          shipmentEntity.Payment.Amount,
		},
		Priority: &priority,
	}); err != nil {
		eventLog.With(logger.NewField("error", err)).Error("create payment notification")
	}

	user, err := s.users.GetUser(ctx, ownerID)
	if err != nil {
		eventLog.With(logger.NewField("error", err)).Error("resolve shipment owner for email")
	} else if err := sendMail(user); err != nil {
		eventLog.With(logger.NewField("error", err)).Error("enqueue payment email")
	}

	s.broadcaster.SendPaymentUpdate(ownerID, entities.PaymentUpdate{
		ShipmentID:     shipmentEntity.ID,
		TrackingNumber: shipmentEntity.TrackingNumber,
		Status:         shipmentEntity.Payment.Status,
		ShipmentStatus: shipmentEntity.Status.String(),
		Amount:         shipmentEntity.Payment.Amount,
	})
}

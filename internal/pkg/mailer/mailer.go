// Package mailer enqueues payment emails for asynchronous delivery. The
// actual SMTP send happens in a separate worker consuming the queue.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"shipping/internal/entities"
)

const EmailQueue = "shipping.emails"

type Publisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

// emailJob is the wire format of a queued email.
type emailJob struct {
	To       string                 `json:"to"`
	Subject  string                 `json:"subject"`
	Template string                 `json:"template"`
	Data     map[string]interface{} `json:"data"`
}

type Mailer struct {
	publisher Publisher
}

func New(publisher Publisher) *Mailer {
	return &Mailer{publisher: publisher}
}

func (m *Mailer) SendPaymentVerificationRequested(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User) error {
	return m.enqueue(ctx, emailJob{
		To:       user.Email,
		Subject:  fmt.Sprintf("Payment received for %s", shipmentEntity.TrackingNumber),
		Template: "payment_verification_requested",
		Data: map[string]interface{}{
			"user_name":       user.Name,
			"tracking_number": shipmentEntity.TrackingNumber,
			"amount":          shipmentEntity.Cost.Total,
		},
	})
}

func (m *Mailer) SendPaymentConfirmation(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User) error {
	return m.enqueue(ctx, emailJob{
		To:       user.Email,
		Subject:  fmt.Sprintf("Payment confirmed for %s", shipmentEntity.TrackingNumber),
		Template: "payment_confirmation",
		Data: map[string]interface{}{
			"user_name":       user.Name,
			"tracking_number": shipmentEntity.TrackingNumber,
			"amount":          shipmentEntity.Payment.Amount,
		},
	})
}

func (m *Mailer) SendPaymentRejectionNotification(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User, reason string) error {
	return m.enqueue(ctx, emailJob{
		To:       user.Email,
		Subject:  fmt.Sprintf("Payment rejected for %s", shipmentEntity.TrackingNumber),
		Template: "payment_rejection",
		Data: map[string]interface{}{
			"user_name":       user.Name,
			"tracking_number": shipmentEntity.TrackingNumber,
			"reason":          reason,
		},
	})
}

func (m *Mailer) SendRefundConfirmation(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User, amount float64, reason string) error {
	return m.enqueue(ctx, emailJob{
		To:       user.Email,
		Subject:  fmt.Sprintf("Refund processed for %s", shipmentEntity.TrackingNumber),
		Template: "refund_confirmation",
		Data: map[string]interface{}{
			"user_name":       user.Name,
			"tracking_number": shipmentEntity.TrackingNumber,
			"amount":          amount,
			"reason":          reason,
		},
	})
}

func (m *Mailer) enqueue(ctx context.Context, job emailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	err = m.publisher.Publish(ctx, EmailQueue, body)
	if err != nil {
		return fmt.Errorf("publish email job: %w", err)
	}
	return nil
}

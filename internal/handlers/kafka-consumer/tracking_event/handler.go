package tracking_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/entities"
	trackingservice "shipping/internal/service/tracking"
	"shipping/pkg/logger"
)

// scanEvent is the wire format of a carrier scan on the tracking topic.
type scanEvent struct {
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	OccurredAt     time.Time `json:"occurred_at,omitempty"`
}

type Handler struct {
	trackingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("tracking.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// session closed on rebalance or consumer group shutdown
			h.log.Info("tracking.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled, the message will be
// reprocessed) and false to continue with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scanEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("tracking.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("tracking.events processing")

	trackingEvent := entities.TrackingEvent{
		TrackingNumber: event.TrackingNumber,
		Status:         entities.ShipmentStatusType(event.Status),
		Location:       event.Location,
		Description:    event.Description,
		OccurredAt:     event.OccurredAt,
	}

	shipmentEntity, err := h.trackingService.ProcessTrackingEvent(ctx, trackingEvent)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, trackingservice.ErrInvalidTrackingNumber):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler received scan without tracking number")

		case errors.Is(err, trackingservice.ErrUnknownStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler unknown carrier status")

		case errors.Is(err, trackingservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler no shipment for tracking number")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.events handler failed to process scan")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("tracking_number", shipmentEntity.TrackingNumber),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", shipmentEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("tracking.events: processed")

	sess.MarkMessage(message, "")
	return false
}

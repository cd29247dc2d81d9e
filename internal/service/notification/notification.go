package notification

import (
	"context"
	"fmt"

	"shipping/internal/entities"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateNotification(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	if notificationModify.UserID == nil ||
		notificationModify.Type == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidType(*notificationModify.Type) {
		return nil, ErrInvalidType
	}

	priority := entities.DefaultNotificationPriority
	if notificationModify.Priority != nil {
		if !isValidPriority(*notificationModify.Priority) {
			return nil, ErrInvalidPriority
		}
		priority = *notificationModify.Priority
	}

	notificationEntity := &entities.Notification{
		UserID:   *notificationModify.UserID,
		Type:     *notificationModify.Type,
		Data:     notificationModify.Data,
		Priority: priority,
	}

	created, err := s.repository.Create(ctx, notificationEntity)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return created, nil
}

func (s *Service) ListNotifications(ctx context.Context, userID int64, page entities.Page) ([]entities.Notification, error) {
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	notifications, err := s.repository.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotificationNotFound
	}

	if err := s.repository.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func isValidType(t entities.NotificationType) bool {
	switch t {
	case entities.NotificationPaymentVerificationRequested,
		entities.NotificationPaymentConfirmed,
		entities.NotificationPaymentRejected,
		entities.NotificationPaymentRefunded:
		return true
	default:
		return false
	}
}

func isValidPriority(p entities.NotificationPriority) bool {
	switch p {
	case entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh:
		return true
	default:
		return false
	}
}

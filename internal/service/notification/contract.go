//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationEntity *entities.Notification) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID int64, page entities.Page) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

package notification

import (
	"context"
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity *entities.Notification) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (id, user_id, type, data, priority)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, user_id, type, data, priority, read, created_at
	`

	var notificationModel NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.UserID,
		notificationEntity.Type.String(),
		notificationEntity.Data,
		notificationEntity.Priority.String(),
	).Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.Type,
		&notificationModel.Data,
		&notificationModel.Priority,
		&notificationModel.Read,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, page entities.Page) ([]entities.Notification, error) {
	query := `
		SELECT id, user_id, type, data, priority, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.querier.Query(ctx, query, userID, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	var notifications []entities.Notification
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(
			&notificationModel.ID,
			&notificationModel.UserID,
			&notificationModel.Type,
			&notificationModel.Data,
			&notificationModel.Priority,
			&notificationModel.Read,
			&notificationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list scan error: %w", err)
		}
		notifications = append(notifications, *ToDomain(&notificationModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list rows error: %w", err)
	}

	return notifications, nil
}

func (r *Repository) MarkRead(ctx context.Context, id string) error {
	query := `
		UPDATE notifications SET read = TRUE WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

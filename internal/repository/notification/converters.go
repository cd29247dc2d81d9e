package notification

import "shipping/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      entities.NotificationType(n.Type),
		Data:      n.Data,
		Priority:  entities.NotificationPriority(n.Priority),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

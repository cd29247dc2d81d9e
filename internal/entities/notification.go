package entities

import "time"

type NotificationType string

const (
	NotificationPaymentVerificationRequested NotificationType = "payment_verification_requested"
	NotificationPaymentConfirmed             NotificationType = "payment_confirmed"
	NotificationPaymentRejected              NotificationType = "payment_rejected"
	NotificationPaymentRefunded              NotificationType = "payment_refunded"
)

func (t NotificationType) String() string {
	return string(t)
}

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

const DefaultNotificationPriority = PriorityNormal

func (p NotificationPriority) String() string {
	return string(p)
}

type Notification struct {
	ID        string
	UserID    int64
	Type      NotificationType
	Data      map[string]interface{}
	Priority  NotificationPriority
	Read      bool
	CreatedAt time.Time
}

type NotificationModify struct {
	UserID   *int64
	Type     *NotificationType
	Data     map[string]interface{}
	Priority *NotificationPriority
}

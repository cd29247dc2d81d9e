package notification

import "time"

type NotificationDB struct {
	ID        string
	UserID    int64
	Type      string
	Data      map[string]interface{}
	Priority  string
	Read      bool
	CreatedAt time.Time
}

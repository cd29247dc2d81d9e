package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidType           = errors.New("invalid notification type")
	ErrInvalidPriority       = errors.New("invalid notification priority")
	ErrNotificationNotFound  = errors.New("notification not found")
)

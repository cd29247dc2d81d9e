package entities

import "time"

// TrackingEvent is a carrier scan consumed from the tracking events topic.
type TrackingEvent struct {
	TrackingNumber string
	Status         ShipmentStatusType
	Location       string
	Description    string
	OccurredAt     time.Time
}

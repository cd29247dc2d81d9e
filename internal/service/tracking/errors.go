package tracking

import (
	"errors"

	"shipping/internal/service/shipment"
)

var (
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrUnknownStatus         = errors.New("unknown carrier status")

	// the shipment repository owns the not found sentinel
	ErrShipmentNotFound = shipment.ErrShipmentNotFound
)

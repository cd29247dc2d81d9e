package payment

import (
	"errors"

	"shipping/internal/service/shipment"
)

var (
	ErrMissingBankDetails     = errors.New("bank account name and bank name are required")
	ErrMissingRejectionReason = errors.New("rejection reason is required when rejecting a payment")
	ErrMissingRefundReason    = errors.New("refund reason is required")
	ErrInvalidRefundAmount    = errors.New("refund amount must be positive and not exceed the paid amount")
	ErrDraftShipment          = errors.New("draft shipments cannot accept payments")

	ErrInvalidPaymentState = errors.New("payment is not in the expected state for this transition")
	ErrAlreadyRefunded     = errors.New("payment already refunded")

	// the shipment repository owns the not found sentinel
	ErrShipmentNotFound = shipment.ErrShipmentNotFound
)

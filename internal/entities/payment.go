package entities

import "time"

type PaymentStatusType string

const (
	PaymentPending              PaymentStatusType = "pending"
	PaymentAwaitingVerification PaymentStatusType = "awaiting_verification"
	PaymentCompleted            PaymentStatusType = "completed"
	PaymentFailed               PaymentStatusType = "failed"
	PaymentRefunded             PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

const PaymentMethodBankTransfer = "bank_transfer"

type BankDetails struct {
	AccountName string
	BankName    string
}

// Payment is embedded in the shipment aggregate and persisted with it.
type Payment struct {
	Status          PaymentStatusType
	Method          string
	Amount          float64
	BankDetails     BankDetails
	CreatedAt       *time.Time
	VerifiedAt      *time.Time
	VerifiedBy      string
	Notes           string
	RejectionReason string
	Refunded        bool
	RefundedAt      *time.Time
	RefundedBy      string
	RefundReason    string
	RefundAmount    float64
}

// PaymentProjection is the read model returned by payment status queries.
type PaymentProjection struct {
	ShipmentID      int64
	Status          PaymentStatusType
	Method          string
	Amount          float64
	BankDetails     BankDetails
	CreatedAt       *time.Time
	VerifiedAt      *time.Time
	VerifiedBy      string
	Notes           string
	RejectionReason string
	Refunded        bool
	RefundedAt      *time.Time
	RefundedBy      string
	RefundReason    string
	RefundAmount    float64
	CostTotal       float64
}

// PaymentUpdate is the payload broadcast to websocket subscribers.
type PaymentUpdate struct {
	ShipmentID     int64             `json:"shipment_id"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
	Status         PaymentStatusType `json:"status"`
	ShipmentStatus string            `json:"shipment_status"`
	Amount         float64           `json:"amount"`
}

package shipment

import "time"

// The shipment row keeps the fields we filter on as plain columns and the
// rest of the aggregate as jsonb documents. pgx encodes the doc structs to
// jsonb and back on scan.

type ShipmentDB struct {
	ID             int64
	OwnerID        *int64
	TrackingNumber *string
	Type           string
	Status         string
	Sender         PartyDoc
	Recipient      PartyDoc
	Packages       []PackageDoc
	Pickup         PickupDoc
	Delivery       DeliveryDoc
	Insurance      InsuranceDoc
	Cost           CostDoc
	Payment        PaymentDoc
	Timeline       []TimelineEntryDoc
	IsDraft        bool
	LastSavedStep  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AddressDoc struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	TaxID      string `json:"tax_id,omitempty"`
}

type PartyDoc struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Address AddressDoc `json:"address"`
}

type DimensionsDoc struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PackageDoc struct {
	Type         string        `json:"type"`
	Weight       float64       `json:"weight"`
	Dimensions   DimensionsDoc `json:"dimensions"`
	IsFragile    bool          `json:"is_fragile"`
	IsPerishable bool          `json:"is_perishable"`
	IsHazardous  bool          `json:"is_hazardous"`
}

type PickupDoc struct {
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
}

type DeliveryDoc struct {
	EstimatedDate time.Time  `json:"estimated_date"`
	ActualDate    *time.Time `json:"actual_date,omitempty"`
	Options       string     `json:"options,omitempty"`
}

type InsuranceDoc struct {
	Type     string  `json:"type"`
	Coverage float64 `json:"coverage"`
}

type CostDoc struct {
	BaseAmount float64 `json:"base_amount"`
	Insurance  float64 `json:"insurance"`
	VAT        float64 `json:"vat"`
	Total      float64 `json:"total"`
}

type BankDetailsDoc struct {
	AccountName string `json:"account_name"`
	BankName    string `json:"bank_name"`
}

type PaymentDoc struct {
	Status          string         `json:"status"`
	Method          string         `json:"method,omitempty"`
	Amount          float64        `json:"amount"`
	BankDetails     BankDetailsDoc `json:"bank_details"`
	CreatedAt       *time.Time     `json:"created_at,omitempty"`
	VerifiedAt      *time.Time     `json:"verified_at,omitempty"`
	VerifiedBy      string         `json:"verified_by,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Refunded        bool           `json:"refunded"`
	RefundedAt      *time.Time     `json:"refunded_at,omitempty"`
	RefundedBy      string         `json:"refunded_by,omitempty"`
	RefundReason    string         `json:"refund_reason,omitempty"`
	RefundAmount    float64        `json:"refund_amount,omitempty"`
}

type TimelineEntryDoc struct {
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

package entities

import (
	"time"
)

type Shipment struct {
	ID             int64
	OwnerID        *int64
	TrackingNumber string
	Type           ShipmentType
	Status         ShipmentStatusType
	Sender         Party
	Recipient      Party
	Packages       []Package
	Pickup         Pickup
	Delivery       Delivery
	Insurance      Insurance
	Cost           Cost
	Payment        Payment
	Timeline       []TimelineEntry
	IsDraft        bool
	LastSavedStep  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ShipmentType string

const (
	ShipmentInternational ShipmentType = "international"
	ShipmentLocal         ShipmentType = "local"
)

func (t ShipmentType) String() string {
	return string(t)
}

type ShipmentStatusType string

const (
	ShipmentPending        ShipmentStatusType = "pending"
	ShipmentAwaitingPickup ShipmentStatusType = "awaiting_pickup"
	ShipmentPickedUp       ShipmentStatusType = "picked_up"
	ShipmentInTransit      ShipmentStatusType = "in_transit"
	ShipmentOutForDelivery ShipmentStatusType = "out_for_delivery"
	ShipmentDelivered      ShipmentStatusType = "delivered"
	ShipmentCancelled      ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// StatusRank orders the delivery lifecycle. Cancelled sits outside
// the progression and never accepts further transitions.
func (s ShipmentStatusType) StatusRank() int {
	switch s {
	case ShipmentPending:
		return 0
	case ShipmentAwaitingPickup:
		return 1
	case ShipmentPickedUp:
		return 2
	case ShipmentInTransit:
		return 3
	case ShipmentOutForDelivery:
		return 4
	case ShipmentDelivered:
		return 5
	case ShipmentCancelled:
		return 6
	default:
		return -1
	}
}

type PackageType string

const (
	PackageParcel    PackageType = "parcel"
	PackageDocuments PackageType = "documents"
	PackagePallet    PackageType = "pallet"
	PackageContainer PackageType = "container"
	PackageOther     PackageType = "other"
)

func (t PackageType) String() string {
	return string(t)
}

type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

type Package struct {
	Type         PackageType
	Weight       float64
	Dimensions   Dimensions
	IsFragile    bool
	IsPerishable bool
	IsHazardous  bool
}

// SpecialHandling reports whether the package carries any surcharge flag.
func (p Package) SpecialHandling() bool {
	return p.IsFragile || p.IsPerishable || p.IsHazardous
}

type Address struct {
	Street     string
	City       string
	Country    string // ISO 3166-1 alpha-2
	PostalCode string
	TaxID      string
}

type Party struct {
	Name    string
	Email   string
	Phone   string
	Address Address
}

type Pickup struct {
	Location string
	Date     time.Time
}

type Delivery struct {
	EstimatedDate time.Time
	ActualDate    *time.Time
	Options       string
}

type InsuranceType string

const (
	InsuranceNone    InsuranceType = "none"
	InsuranceBasic   InsuranceType = "basic"
	InsurancePremium InsuranceType = "premium"
)

func (t InsuranceType) String() string {
	return string(t)
}

type Insurance struct {
	Type     InsuranceType
	Coverage float64
}

type Cost struct {
	BaseAmount float64
	Insurance  float64
	VAT        float64
	Total      float64
}

type TimelineEntry struct {
	Status      ShipmentStatusType
	Location    string
	Description string
	Timestamp   time.Time
}

// AppendTimeline is the only way the timeline grows. Entries are never
// removed or reordered.
func (s *Shipment) AppendTimeline(status ShipmentStatusType, location, description string, at time.Time) {
	s.Timeline = append(s.Timeline, TimelineEntry{
		Status:      status,
		Location:    location,
		Description: description,
		Timestamp:   at,
	})
}

type ShipmentModify struct {
	ID            *int64
	OwnerID       *int64
	Type          *ShipmentType
	Status        *ShipmentStatusType
	Sender        *Party
	Recipient     *Party
	Packages      *[]Package
	Pickup        *Pickup
	Delivery      *Delivery
	Insurance     *Insurance
	IsDraft       *bool
	LastSavedStep *int
}

type ShipmentFilter struct {
	OwnerID *int64
	Status  *ShipmentStatusType
	Type    *ShipmentType
	IsDraft *bool
}

type Page struct {
	Offset int64
	Limit  int64
}

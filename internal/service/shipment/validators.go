package shipment

import (
	"fmt"
	"strings"
	"time"

	"shipping/internal/entities"
)

const (
	maxPackages = 10

	documentsWeightLimitKg = 5.0
	packageWeightLimitKg   = 70.0

	minDimensionCm = 1.0
	maxDimensionCm = 150.0

	maxPickupWindowDays = 30
)

func isValidShipmentType(t entities.ShipmentType) bool {
	switch t {
	case entities.ShipmentInternational, entities.ShipmentLocal:
		return true
	default:
		return false
	}
}

func isValidInsuranceType(t entities.InsuranceType) bool {
	switch t {
	case entities.InsuranceNone, entities.InsuranceBasic, entities.InsurancePremium:
		return true
	default:
		return false
	}
}

func isValidPackageType(t entities.PackageType) bool {
	switch t {
	case entities.PackageParcel, entities.PackageDocuments, entities.PackagePallet,
		entities.PackageContainer, entities.PackageOther:
		return true
	default:
		return false
	}
}

func isValidCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func validateParty(p entities.Party) error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		strings.TrimSpace(p.Address.City) == "" {
		return ErrMissingRequiredFields
	}
	if !isValidCountryCode(p.Address.Country) {
		return ErrInvalidCountryCode
	}
	return nil
}

// validateAddresses enforces the country rule per shipment type:
// international parties must reside in different countries, local in the same.
func validateAddresses(shipmentType entities.ShipmentType, sender, recipient entities.Party) error {
	if err := validateParty(sender); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	if err := validateParty(recipient); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}

	switch shipmentType {
	case entities.ShipmentInternational:
		if sender.Address.Country == recipient.Address.Country {
			return ErrSameCountry
		}
	case entities.ShipmentLocal:
		if sender.Address.Country != recipient.Address.Country {
			return ErrDifferentCountry
		}
	default:
		return ErrInvalidShipmentType
	}
	return nil
}

// validatePackages checks count and per-package bounds. The first violation
// wins and the error names the 1-based index of the offending package.
func validatePackages(packages []entities.Package) error {
	if len(packages) == 0 {
		return ErrNoPackages
	}
	if len(packages) > maxPackages {
		return ErrTooManyPackages
	}

	for i, pkg := range packages {
		if !isValidPackageType(pkg.Type) {
			return fmt.Errorf("package %d: %w", i+1, ErrInvalidPackageType)
		}

		limit := packageWeightLimitKg
		if pkg.Type == entities.PackageDocuments {
			limit = documentsWeightLimitKg
		}
		if pkg.Weight <= 0 || pkg.Weight > limit {
			return fmt.Errorf("package %d: weight %.2fkg outside (0, %.0f]: %w", i+1, pkg.Weight, limit, ErrPackageWeight)
		}

		for _, dim := range []float64{pkg.Dimensions.Length, pkg.Dimensions.Width, pkg.Dimensions.Height} {
			if dim < minDimensionCm || dim > maxDimensionCm {
				return fmt.Errorf("package %d: dimension %.2fcm outside [%.0f, %.0f]: %w",
					i+1, dim, minDimensionCm, maxDimensionCm, ErrPackageDimensions)
			}
		}
	}
	return nil
}

// validateShipmentDetails runs the full field validation for a shipment that
// is (or is about to be) committed. Pickup date is checked separately since
// a stored date legitimately drifts into the past once the shipment moves.
func validateShipmentDetails(shipmentEntity *entities.Shipment) error {
	if !isValidShipmentType(shipmentEntity.Type) {
		return ErrInvalidShipmentType
	}
	if !isValidInsuranceType(shipmentEntity.Insurance.Type) {
		return ErrInvalidInsuranceType
	}
	if err := validateAddresses(shipmentEntity.Type, shipmentEntity.Sender, shipmentEntity.Recipient); err != nil {
		return err
	}
	return validatePackages(shipmentEntity.Packages)
}

func validatePickupDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	pickupDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if pickupDay.Before(today) {
		return ErrPickupDateInPast
	}
	if pickupDay.After(today.AddDate(0, 0, maxPickupWindowDays)) {
		return ErrPickupDateTooFar
	}
	if wd := pickupDay.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return ErrPickupDateWeekend
	}
	return nil
}

func isValidTrackingNumber(trackingNumber string) bool {
	return strings.TrimSpace(trackingNumber) != ""
}

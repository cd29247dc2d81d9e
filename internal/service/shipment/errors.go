package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentType   = errors.New("invalid shipment type")
	ErrInvalidInsuranceType  = errors.New("invalid insurance type")
	ErrInvalidCountryCode    = errors.New("invalid country code")
	ErrSameCountry           = errors.New("international shipment requires different sender and recipient countries")
	ErrDifferentCountry      = errors.New("local shipment requires matching sender and recipient countries")

	ErrNoPackages         = errors.New("shipment requires at least one package")
	ErrTooManyPackages    = errors.New("shipment allows at most 10 packages")
	ErrInvalidPackageType = errors.New("invalid package type")
	ErrPackageWeight      = errors.New("package weight out of bounds")
	ErrPackageDimensions  = errors.New("package dimensions out of bounds")

	ErrPickupDateInPast  = errors.New("pickup date is in the past")
	ErrPickupDateTooFar  = errors.New("pickup date is more than 30 days out")
	ErrPickupDateWeekend = errors.New("pickup date falls on a weekend")

	ErrInvalidLastSavedStep = errors.New("draft step must be between 1 and 7")
	ErrInvalidTrackingNum   = errors.New("invalid tracking number")

	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrNotDraft          = errors.New("shipment is not a draft")
	ErrShipmentCommitted = errors.New("committed shipment cannot become a draft")
	ErrNotOwner          = errors.New("shipment belongs to another user")
	ErrShipmentLocked    = errors.New("shipment can no longer be modified")
	ErrConflict          = errors.New("resource already exists")
)

var validationErrors = []error{
	ErrMissingRequiredFields,
	ErrInvalidShipmentType,
	ErrInvalidInsuranceType,
	ErrInvalidCountryCode,
	ErrSameCountry,
	ErrDifferentCountry,
	ErrNoPackages,
	ErrTooManyPackages,
	ErrInvalidPackageType,
	ErrPackageWeight,
	ErrPackageDimensions,
	ErrPickupDateInPast,
	ErrPickupDateTooFar,
	ErrPickupDateWeekend,
	ErrInvalidLastSavedStep,
	ErrInvalidTrackingNum,
}

// IsValidationError reports whether err rejects the caller's input rather
// than the shipment's state.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

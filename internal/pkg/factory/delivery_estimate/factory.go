package delivery_estimate

import (
	"time"

	"shipping/internal/entities"
)

const (
	internationalDeliveryDays = 5
	localDeliveryDays         = 2
)

type Estimator struct{}

func New() *Estimator {
	return &Estimator{}
}

// EstimateDeliveryDate adds the transit days for the shipment type plus
// volume and handling surcharges to the pickup date, then rolls the result
// forward one day at a time while it lands on a weekend.
func (e *Estimator) EstimateDeliveryDate(
	shipmentType entities.ShipmentType,
	packages []entities.Package,
	pickupDate time.Time,
) time.Time {
	deliveryDays := localDeliveryDays
	if shipmentType == entities.ShipmentInternational {
		deliveryDays = internationalDeliveryDays
	}

	if len(packages) > 1 {
		deliveryDays += (len(packages) + 1) / 2
	}

	for _, pkg := range packages {
		if pkg.SpecialHandling() {
			deliveryDays++
			break
		}
	}

	estimated := pickupDate.AddDate(0, 0, deliveryDays)
	for estimated.Weekday() == time.Saturday || estimated.Weekday() == time.Sunday {
		estimated = estimated.AddDate(0, 0, 1)
	}

	return estimated
}

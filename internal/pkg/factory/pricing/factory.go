package pricing

import (
	"math"

	"shipping/internal/entities"
	"shipping/internal/pkg/config"
)

// volumetric divisor for cm dimensions, industry standard
const volumetricDivisor = 5000.0

const internationalDistanceMultiplier = 1.5

const (
	fragileMultiplier    = 1.2
	perishableMultiplier = 1.15
	hazardousMultiplier  = 1.3
)

type Calculator struct {
	rates config.Rates
}

func New(rates config.Rates) *Calculator {
	return &Calculator{
		rates: rates,
	}
}

func (c *Calculator) VolumetricWeight(dims entities.Dimensions) float64 {
	return dims.Length * dims.Width * dims.Height / volumetricDivisor
}

// ChargeableWeight is the billed weight: actual or volumetric, whichever
// is greater.
func (c *Calculator) ChargeableWeight(pkg entities.Package) float64 {
	return math.Max(pkg.Weight, c.VolumetricWeight(pkg.Dimensions))
}

func (c *Calculator) TotalChargeableWeight(packages []entities.Package) float64 {
	var total float64
	for _, pkg := range packages {
		total += c.ChargeableWeight(pkg)
	}
	return total
}

// BaseShippingCost applies the per-type base rate to the total chargeable
// weight, then the international distance multiplier once, then the special
// handling multipliers per package in package order.
//
// Each special handling multiplier compounds on the whole running cost, not
// on that package's share. The result is therefore sensitive to package
// ordering. Billing history depends on this exact sequence, so it must not
// be "fixed" without a migration of already-quoted shipments.
func (c *Calculator) BaseShippingCost(shipmentType entities.ShipmentType, packages []entities.Package) float64 {
	cost := c.TotalChargeableWeight(packages) * c.baseRate(shipmentType)

	if shipmentType == entities.ShipmentInternational {
		cost *= internationalDistanceMultiplier
	}

	for _, pkg := range packages {
		if pkg.IsFragile {
			cost *= fragileMultiplier
		}
		if pkg.IsPerishable {
			cost *= perishableMultiplier
		}
		if pkg.IsHazardous {
			cost *= hazardousMultiplier
		}
	}

	return round2(cost)
}

func (c *Calculator) InsuranceCost(insuranceType entities.InsuranceType, baseAmount float64) float64 {
	switch insuranceType {
	case entities.InsuranceBasic:
		return round2(baseAmount * c.rates.InsuranceBasicRate)
	case entities.InsurancePremium:
		return round2(baseAmount * c.rates.InsurancePremiumRate)
	default:
		return 0
	}
}

// ShippingCost builds the full cost breakdown. Every component is rounded
// to two decimals independently before the total is summed and rounded, so
// the total may differ by up to a cent from a single-rounding computation.
func (c *Calculator) ShippingCost(
	shipmentType entities.ShipmentType,
	insuranceType entities.InsuranceType,
	packages []entities.Package,
) entities.Cost {
	baseAmount := c.BaseShippingCost(shipmentType, packages)
	insurance := c.InsuranceCost(insuranceType, baseAmount)
	vat := round2(baseAmount * c.rates.VATRate)

	return entities.Cost{
		BaseAmount: baseAmount,
		Insurance:  insurance,
		VAT:        vat,
		Total:      round2(baseAmount + insurance + vat),
	}
}

func (c *Calculator) baseRate(shipmentType entities.ShipmentType) float64 {
	if shipmentType == entities.ShipmentInternational {
		return c.rates.BaseRateInternational
	}
	return c.rates.BaseRateLocal
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package services

import (
	"math"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/core/domain/model/pricing"
)

// Distance threshold beyond the configured tiers and the per-km surcharge
// applied past it.
const (
	extendedRangeKm        float64 = 10
	extendedRangeBaseFee   float64 = 120
	extendedRangePerKmFee  float64 = 10
	distanceRoundingFactor float64 = 10
)

// DeliveryQuote is the result of a fee calculation: the fee in whole currency
// units and the road-free distance in kilometers rounded to one decimal.
type DeliveryQuote struct {
	Fee        float64
	DistanceKm float64
}

// FeeCalculator is a pure domain service that prices a delivery between the
// store and a drop point.
//
// Pricing rules:
//   - Pickup orders are always free with zero distance
//   - The first tier covering the distance sets the fee
//   - Distances past the tiers and beyond 10 km pay 120 plus 10 per extra km
//   - Any other uncovered distance falls back to the base price
type FeeCalculator struct{}

// NewFeeCalculator creates a new FeeCalculator instance.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// Quote calculates the delivery fee and distance for an order.
//
// Parameters:
//   - pickup: the store location
//   - drop: the customer location (ignored for pickup orders)
//   - settings: tier configuration (must be constructed)
//   - method: pickup or home delivery
//
// Returns the quote, or a validation error when any input is invalid.
func (f FeeCalculator) Quote(
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	settings pricing.DeliverySettings,
	method order.DeliveryMethod,
) (DeliveryQuote, error) {
	if err := method.Validate(); err != nil {
		return DeliveryQuote{}, err
	}
	if err := settings.Validate(); err != nil {
		return DeliveryQuote{}, err
	}

	if method == order.Pickup {
		return DeliveryQuote{Fee: 0, DistanceKm: 0}, nil
	}

	if err := pickup.Validate(); err != nil {
		return DeliveryQuote{}, err
	}
	if err := drop.Validate(); err != nil {
		return DeliveryQuote{}, err
	}

	distance, err := pickup.DistanceTo(drop)
	if err != nil {
		return DeliveryQuote{}, err
	}

	return DeliveryQuote{
		Fee:        math.Round(f.fee(distance, settings)),
		DistanceKm: math.Round(distance*distanceRoundingFactor) / distanceRoundingFactor,
	}, nil
}

func (f FeeCalculator) fee(distanceKm float64, settings pricing.DeliverySettings) float64 {
	if tier, ok := settings.TierFor(distanceKm); ok {
		return tier.Price()
	}

	if distanceKm >= extendedRangeKm {
		return extendedRangeBaseFee + math.Round((distanceKm-extendedRangeKm)*extendedRangePerKmFee)
	}

	return settings.BasePrice()
}

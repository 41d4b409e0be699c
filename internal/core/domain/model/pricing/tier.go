package pricing

import (
	"errors"
	"fmt"

	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// ErrTierIsNotConstructed is returned when using an improperly initialized DeliveryTier.
var ErrTierIsNotConstructed = errors.New("DeliveryTier must be created via NewDeliveryTier constructor")

// DeliveryTier is a half-open distance band [MinKm, MaxKm) with a fixed fee.
// Value Object.
type DeliveryTier struct {
	minKm float64
	maxKm float64
	price float64

	guard guard.ConstructorGuard
}

// NewDeliveryTier creates a tier covering distances d with minKm <= d < maxKm.
func NewDeliveryTier(minKm, maxKm, price float64) (DeliveryTier, error) {
	tier := DeliveryTier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setBand(minKm, maxKm),
		tier.setPrice(price),
	); err != nil {
		return DeliveryTier{}, err
	}

	return tier, nil
}

// Validate ensures the DeliveryTier was created through the constructor.
func (t DeliveryTier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// MinKm returns the inclusive lower bound of the band.
func (t DeliveryTier) MinKm() float64 {
	return t.minKm
}

// MaxKm returns the exclusive upper bound of the band.
func (t DeliveryTier) MaxKm() float64 {
	return t.maxKm
}

// Price returns the delivery fee for distances inside the band.
func (t DeliveryTier) Price() float64 {
	return t.price
}

// Covers reports whether the distance falls inside [MinKm, MaxKm).
func (t DeliveryTier) Covers(distanceKm float64) bool {
	return distanceKm >= t.minKm && distanceKm < t.maxKm
}

func (t *DeliveryTier) setBand(minKm, maxKm float64) error {
	if minKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min km",
			fmt.Errorf("%v must not be negative", minKm))
	}
	if maxKm <= minKm {
		return errs.NewValueIsInvalidErrorWithCause("max km",
			fmt.Errorf("%v must be greater than min km %v", maxKm, minKm))
	}
	t.minKm = minKm
	t.maxKm = maxKm
	return nil
}

func (t *DeliveryTier) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tier price",
			fmt.Errorf("%v must not be negative", price))
	}
	t.price = price
	return nil
}

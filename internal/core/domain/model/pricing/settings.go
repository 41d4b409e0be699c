package pricing

import (
	"errors"
	"fmt"

	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// ErrSettingsAreNotConstructed is returned when using improperly initialized DeliverySettings.
var ErrSettingsAreNotConstructed = errors.New("DeliverySettings must be created via NewDeliverySettings constructor")

// DeliverySettings is the store-wide delivery pricing configuration:
// a base fee, order value bounds for home delivery, and a sorted set of
// distance tiers. Tiers must not overlap; gaps between tiers are allowed
// and fall back to the base price. Value Object.
type DeliverySettings struct {
	basePrice     float64
	minOrderValue float64
	maxOrderValue float64
	tiers         []DeliveryTier

	guard guard.ConstructorGuard
}

// NewDeliverySettings creates the delivery configuration. Tiers must be
// sorted by distance and must not overlap; an empty tier set is valid and
// means every delivery quotes the base price.
func NewDeliverySettings(
	basePrice float64,
	minOrderValue float64,
	maxOrderValue float64,
	tiers []DeliveryTier,
) (DeliverySettings, error) {
	settings := DeliverySettings{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		settings.setBasePrice(basePrice),
		settings.setOrderValueBounds(minOrderValue, maxOrderValue),
		settings.setTiers(tiers),
	); err != nil {
		return DeliverySettings{}, err
	}

	return settings, nil
}

// Validate ensures the DeliverySettings were created through the constructor.
func (s DeliverySettings) Validate() error {
	return s.guard.Validate(ErrSettingsAreNotConstructed)
}

// BasePrice returns the fallback delivery fee.
func (s DeliverySettings) BasePrice() float64 {
	return s.basePrice
}

// MinOrderValue returns the smallest order subtotal accepted for home delivery.
func (s DeliverySettings) MinOrderValue() float64 {
	return s.minOrderValue
}

// MaxOrderValue returns the largest order subtotal accepted for home delivery.
func (s DeliverySettings) MaxOrderValue() float64 {
	return s.maxOrderValue
}

// Tiers returns a copy of the distance tiers, sorted by distance.
func (s DeliverySettings) Tiers() []DeliveryTier {
	tiers := make([]DeliveryTier, len(s.tiers))
	copy(tiers, s.tiers)
	return tiers
}

// TierFor returns the tier covering the distance, or false when no tier matches.
func (s DeliverySettings) TierFor(distanceKm float64) (DeliveryTier, bool) {
	for _, tier := range s.tiers {
		if tier.Covers(distanceKm) {
			return tier, true
		}
	}
	return DeliveryTier{}, false
}

// AllowsOrderValue reports whether the subtotal falls inside the accepted
// order value bounds.
func (s DeliverySettings) AllowsOrderValue(subtotal float64) bool {
	return subtotal >= s.minOrderValue && subtotal <= s.maxOrderValue
}

func (s *DeliverySettings) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base price",
			fmt.Errorf("%v must not be negative", basePrice))
	}
	s.basePrice = basePrice
	return nil
}

func (s *DeliverySettings) setOrderValueBounds(minOrderValue, maxOrderValue float64) error {
	if minOrderValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min order value",
			fmt.Errorf("%v must not be negative", minOrderValue))
	}
	if maxOrderValue < minOrderValue {
		return errs.NewValueIsInvalidErrorWithCause("max order value",
			fmt.Errorf("%v must not be less than min order value %v", maxOrderValue, minOrderValue))
	}
	s.minOrderValue = minOrderValue
	s.maxOrderValue = maxOrderValue
	return nil
}

func (s *DeliverySettings) setTiers(tiers []DeliveryTier) error {
	for i, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		if tier.MinKm() < tiers[i-1].MaxKm() {
			return errs.NewValueIsInvalidErrorWithCause("tiers",
				fmt.Errorf("tier [%v, %v) overlaps or is out of order with tier [%v, %v)",
					tier.MinKm(), tier.MaxKm(), tiers[i-1].MinKm(), tiers[i-1].MaxKm()))
		}
	}
	s.tiers = make([]DeliveryTier, len(tiers))
	copy(s.tiers, tiers)
	return nil
}

package order

import (
	"fmt"

	"bakeshop/internal/pkg/errs"
)

// DeliveryMethod represents how an order reaches the customer:
// collected at the store or delivered to an address.
type DeliveryMethod int

const (
	// UnknownMethod represents an invalid or undefined delivery method.
	UnknownMethod DeliveryMethod = iota

	// Pickup means the customer collects the order at the store.
	// Pickup orders carry no address and no shipping charge.
	Pickup

	// HomeDelivery means a delivery partner brings the order to the
	// customer's address.
	HomeDelivery
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	//nolint:exhaustive // UnknownMethod is intentionally excluded
	return map[DeliveryMethod]string{
		Pickup:       "PICKUP",
		HomeDelivery: "HOME_DELIVERY",
	}
}

// DeliveryMethodFromString parses a wire name ("PICKUP", "HOME_DELIVERY")
// into a DeliveryMethod. Returns an error for unknown names.
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	for method, name := range getDeliveryMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("delivery method",
		fmt.Errorf("%q is not a valid delivery method", s))
}

// Validate checks if the DeliveryMethod is Pickup or HomeDelivery.
func (m DeliveryMethod) Validate() error {
	if _, ok := getDeliveryMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery method is invalid",
			fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (m DeliveryMethod) String() string {
	if str, ok := getDeliveryMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

package kernel

import (
	"fmt"
	"math/rand/v2"

	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// orderIDUpperBound is the exclusive upper bound for generated order numbers.
const orderIDUpperBound = 10000

// ErrOrderIDIsNotConstructed is returned when attempting to use an improperly
// initialized OrderID. Order ids must be created via NewOrderID or
// OrderIDFromString to ensure validity.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID or OrderIDFromString constructors")

// OrderID is the unique, immutable identifier of an order.
//
// Generated ids have the form "ORD-<n>" with n in [0..9999], matching the
// public id scheme exposed by the ordering API. Ids restored from persistence
// or seed data may carry any non-empty value (e.g. "ORD-INIT-001"), so
// OrderIDFromString only requires a non-empty string.
//
// The zero value of OrderID is invalid - use the constructors.
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID generates a fresh order identifier of the form "ORD-<n>".
//
// Example:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id) // e.g. "ORD-2811"
func NewOrderID() OrderID {
	return OrderID{
		value: fmt.Sprintf("ORD-%d", rand.IntN(orderIDUpperBound)), //nolint:gosec // non-cryptographic id
		guard: guard.NewConstructorGuard(),
	}
}

// OrderIDFromString restores an order identifier from its string form.
// Returns an error when the string is empty.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the OrderID was created through a constructor.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the identifier value. Implements fmt.Stringer.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

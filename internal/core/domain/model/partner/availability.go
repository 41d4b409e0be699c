package partner

import (
	"fmt"

	"bakeshop/internal/pkg/errs"
)

// Availability represents whether a delivery partner is accepting work.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Online means the partner is accepting order assignments.
	Online

	// Offline means the partner is not accepting order assignments.
	Offline
)

func getAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded
	return map[Availability]string{
		Online:  "ONLINE",
		Offline: "OFFLINE",
	}
}

// AvailabilityFromString parses a wire name ("ONLINE", "OFFLINE") into an
// Availability. Returns an error for unknown names.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, name := range getAvailabilityStrings() {
		if name == s {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a valid availability", s))
}

// Validate checks if the Availability is Online or Offline.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}

// Toggle returns the opposite availability; any value other than Online
// toggles to Online.
func (a Availability) Toggle() Availability {
	if a == Online {
		return Offline
	}
	return Online
}

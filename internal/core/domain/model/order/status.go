package order

import (
	"fmt"

	"bakeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the bakery workflow from checkout to handover.
//
// State transitions:
//
//	New ──> Accepted ──> Preparing ──> Ready ──┬──> OutForDelivery ──> Delivered
//	                                           └──> PickedUp ───────> Delivered
//
// Cancelled is reachable from every non-terminal state. Re-applying the
// current status is always allowed: the transition is a no-op on the status
// itself but is still recorded in the activity log by the aggregate.
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at checkout.
	New

	// Accepted indicates the store acknowledged the order.
	Accepted

	// Preparing indicates the kitchen started working on the order.
	Preparing

	// Ready indicates the order is packed and waiting for handover.
	Ready

	// OutForDelivery indicates a delivery partner is carrying the order.
	OutForDelivery

	// PickedUp indicates the customer collected a pickup order.
	PickedUp

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the unsuccessful terminal state, reachable from any
	// non-terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		New:            "NEW",
		Accepted:       "ACCEPTED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		PickedUp:       "PICKED_UP",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:            "NEW",
		Accepted:       "ACCEPTED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		PickedUp:       "PICKED_UP",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getTransitionTargets returns the forward edges of the lifecycle graph.
// Cancellation and idempotent self-transitions are handled separately in
// CanTransitionTo.
func getTransitionTargets() map[Status][]Status {
	return map[Status][]Status{
		New:            {Accepted},
		Accepted:       {Preparing},
		Preparing:      {Ready},
		Ready:          {OutForDelivery, PickedUp},
		OutForDelivery: {Delivered},
		PickedUp:       {Delivered},
	}
}

// StatusFromString parses a wire name (e.g. "OUT_FOR_DELIVERY") into a
// Status. Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the valid lifecycle states.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further lifecycle
// progress. Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the lifecycle graph permits moving from
// the current status to next.
//
// Permitted moves:
//   - a forward edge of the graph (e.g. Ready -> OutForDelivery)
//   - any non-terminal status -> Cancelled
//   - any valid status -> itself (idempotent re-apply)
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}

	if next == s {
		return true
	}

	if next == Cancelled {
		return !s.IsTerminal()
	}

	for _, target := range getTransitionTargets()[s] {
		if target == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a lifecycle transition.
//
// Returns:
//   - (next, nil) when the transition is permitted
//   - (0, error) when either status is invalid or the graph forbids the move
//
// This method is used by Order.ChangeStatus to enforce the state machine.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s cannot transition to %s", s.String(), next.String()))
	}

	return next, nil
}

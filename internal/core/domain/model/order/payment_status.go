package order

import (
	"fmt"

	"bakeshop/internal/pkg/errs"
)

// PaymentStatus represents whether an order has been paid for.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status at checkout.
	PaymentPending

	// PaymentPaid indicates payment was received; the transaction id is
	// recorded on the order.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded
	return map[PaymentStatus]string{
		PaymentPending: "PENDING",
		PaymentPaid:    "PAID",
	}
}

// PaymentStatusFromString parses a wire name ("PENDING", "PAID") into a
// PaymentStatus. Returns an error for unknown names.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is Pending or Paid.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

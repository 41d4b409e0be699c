package order

import (
	"errors"
	"fmt"

	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// ErrChargesAreNotConstructed is returned when attempting to use improperly
// initialized Charges.
var ErrChargesAreNotConstructed = errs.NewValueIsRequiredError(
	"charges must be created via NewCharges constructor")

// Charges groups the monetary components of an order: the item subtotal,
// tax, and shipping charge. The order total is always derived as their sum,
// which keeps the total/parts consistency an invariant rather than a
// convention.
type Charges struct { //nolint:recvcheck //using for validation
	subtotal float64
	tax      float64
	shipping float64

	guard guard.ConstructorGuard
}

// NewCharges creates Charges with validation. Each component must be
// non-negative. Returns an aggregated error listing every violated rule.
func NewCharges(subtotal, tax, shipping float64) (Charges, error) {
	charges := Charges{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		charges.setSubtotal(subtotal),
		charges.setTax(tax),
		charges.setShipping(shipping),
	); err != nil {
		return Charges{}, err
	}

	return charges, nil
}

// Validate checks that the Charges were created through the constructor.
func (c Charges) Validate() error {
	return c.guard.Validate(ErrChargesAreNotConstructed)
}

// Subtotal returns the sum of all item line totals.
func (c Charges) Subtotal() float64 {
	return c.subtotal
}

// Tax returns the tax amount.
func (c Charges) Tax() float64 {
	return c.tax
}

// Shipping returns the delivery fee; zero for pickup orders.
func (c Charges) Shipping() float64 {
	return c.shipping
}

// Total returns subtotal + tax + shipping.
func (c Charges) Total() float64 {
	return c.subtotal + c.tax + c.shipping
}

func (c *Charges) setSubtotal(subtotal float64) error {
	if subtotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%f is negative", subtotal))
	}
	c.subtotal = subtotal
	return nil
}

func (c *Charges) setTax(tax float64) error {
	if tax < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tax",
			fmt.Errorf("%f is negative", tax))
	}
	c.tax = tax
	return nil
}

func (c *Charges) setShipping(shipping float64) error {
	if shipping < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipping charge",
			fmt.Errorf("%f is negative", shipping))
	}
	c.shipping = shipping
	return nil
}

package order

import (
	"errors"
	"fmt"

	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// ErrItemLineIsNotConstructed is returned when attempting to use an
// improperly initialized ItemLine.
var ErrItemLineIsNotConstructed = errs.NewValueIsRequiredError(
	"item line must be created via NewItemLine constructor")

// ItemLine is one ordered position: a product reference with the unit price
// and quantity captured at checkout. It is a snapshot - later catalog price
// changes never affect an existing order.
//
// ItemLine is an immutable value object. The zero value is invalid and will
// fail validation - use NewItemLine.
type ItemLine struct { //nolint:recvcheck //using for validation
	productID string
	name      string
	unitPrice float64
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemLine creates an ItemLine with validation.
//
// Business rules:
//   - product id and name must be non-empty
//   - unit price must not be negative
//   - quantity must be positive
//
// Returns an aggregated error listing every violated rule.
func NewItemLine(productID, name string, unitPrice float64, quantity int) (ItemLine, error) {
	line := ItemLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return ItemLine{}, err
	}

	return line, nil
}

// Validate checks that the ItemLine was created through the constructor.
func (l ItemLine) Validate() error {
	return l.guard.Validate(ErrItemLineIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (l ItemLine) ProductID() string {
	return l.productID
}

// Name returns the product name as displayed at checkout.
func (l ItemLine) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price captured at checkout.
func (l ItemLine) UnitPrice() float64 {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l ItemLine) Quantity() int {
	return l.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (l ItemLine) LineTotal() float64 {
	return l.unitPrice * float64(l.quantity)
}

func (l *ItemLine) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	l.productID = productID
	return nil
}

func (l *ItemLine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	l.name = name
	return nil
}

func (l *ItemLine) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%f is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *ItemLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

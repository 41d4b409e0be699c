package commands

import (
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
	ErrItemsAreRequired        = errors.New("at least one item is required")
	ErrDropPointIsRequired     = errors.New("drop point is required for home delivery")
)

// PlaceOrderCommand represents a checkout request from a customer.
// Encapsulates the cart contents, contact details and delivery choice.
// A fresh ORD- identifier is generated at construction time.
//
// Example:
//
//	line, _ := order.NewItemLine("2", "Kaju Katli", 18.50, 2)
//	cmd, err := NewPlaceOrderCommand("Priya", "+91-987...", "12 MG Road",
//	    []order.ItemLine{line}, order.HomeDelivery, &dropPoint)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, store, settings)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.OrderID
	customerName  string
	customerPhone string
	address       string
	items         []order.ItemLine
	method        order.DeliveryMethod
	dropPoint     *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new bakery order.
// Automatically generates the order identifier. Validates that contact
// details are present, the cart is not empty, and home delivery carries
// a drop point for fee calculation.
func NewPlaceOrderCommand(
	customerName string,
	customerPhone string,
	address string,
	items []order.ItemLine,
	method order.DeliveryMethod,
	dropPoint *kernel.GeoPoint,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewOrderID()),
		command.setCustomerName(customerName),
		command.setCustomerPhone(customerPhone),
		command.setItems(items),
		command.setDelivery(method, address, dropPoint),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the generated identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerName returns the customer's name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Address returns the delivery address; empty for pickup orders.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Items returns the cart contents.
func (c PlaceOrderCommand) Items() []order.ItemLine {
	items := make([]order.ItemLine, len(c.items))
	copy(items, c.items)
	return items
}

// Method returns the chosen delivery method.
func (c PlaceOrderCommand) Method() order.DeliveryMethod {
	return c.method
}

// DropPoint returns the customer location; nil for pickup orders.
func (c PlaceOrderCommand) DropPoint() *kernel.GeoPoint {
	return c.dropPoint
}

// Subtotal returns the sum of all item line totals.
func (c PlaceOrderCommand) Subtotal() float64 {
	var subtotal float64
	for _, line := range c.items {
		subtotal += line.LineTotal()
	}
	return subtotal
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.ItemLine) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, line := range items {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.ItemLine, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setDelivery(
	method order.DeliveryMethod,
	address string,
	dropPoint *kernel.GeoPoint,
) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if method == order.HomeDelivery {
		if dropPoint == nil {
			return ErrDropPointIsRequired
		}
		if err := dropPoint.Validate(); err != nil {
			return err
		}
	}

	c.method = method
	c.address = address
	c.dropPoint = dropPoint
	return nil
}

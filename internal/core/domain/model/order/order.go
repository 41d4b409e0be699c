package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// moneyTolerance absorbs floating point noise when checking that the charges
// subtotal matches the sum of the item line totals.
const moneyTolerance = 1e-6

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrCustomerPhoneIsRequired is returned when creating an order without a customer phone.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
	// ErrItemsAreRequired is returned when creating an order with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrAddressIsRequired is returned when a home delivery order has no address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrOrderAlreadyPaid is returned when marking an already paid order as paid.
	ErrOrderAlreadyPaid = errs.NewValueIsInvalidErrorWithCause("payment status",
		errors.New("order is already paid"))
	// ErrOrderIsClosed is returned when assigning a partner to an order in a terminal status.
	ErrOrderIsClosed = errs.NewValueIsInvalidErrorWithCause("status",
		errors.New("order is already in a terminal status"))
)

// Order is the aggregate root of the ordering domain. It is created once at
// checkout with status New and afterwards mutated only through lifecycle
// methods; every applied change appends one entry to the activity log.
//
// Invariants:
//   - id, customer name and phone are set and immutable
//   - at least one item line, each a valid checkout snapshot
//   - home delivery orders carry a non-empty address
//   - total always equals subtotal + tax + shipping (held by Charges) and
//     the subtotal matches the sum of the line totals
//   - status changes follow the lifecycle graph (see Status)
//   - the activity log is append-only
//
// Orders are never deleted; Delivered and Cancelled are terminal.
type Order struct {
	id            kernel.OrderID
	customerName  string
	customerPhone string
	// address is empty for pickup orders
	address string
	items   []ItemLine
	charges Charges
	status  Status
	method  DeliveryMethod

	paymentStatus PaymentStatus
	transactionID *kernel.UUID

	// partnerID is the assigned delivery partner (nil if unassigned).
	// A weak reference: the partner aggregate is owned elsewhere.
	partnerID *kernel.UUID

	createdAt   time.Time
	activityLog []ActivityEntry

	guard guard.ConstructorGuard
}

// NewOrder creates an order at checkout. This and RestoreOrder are the only
// ways to obtain a valid Order.
//
// The new order starts with status New, payment Pending, no assigned
// partner, and a single "order placed" activity entry.
//
// Parameters:
//   - id: unique order identifier
//   - customerName, customerPhone: contact details (non-empty)
//   - address: delivery address; required for home delivery, ignored-if-empty
//     for pickup
//   - items: at least one valid ItemLine
//   - method: Pickup or HomeDelivery
//   - charges: monetary components; the subtotal must equal the sum of the
//     item line totals
//
// Returns an aggregated validation error when any rule is violated.
func NewOrder(
	id kernel.OrderID,
	customerName string,
	customerPhone string,
	address string,
	items []ItemLine,
	method DeliveryMethod,
	charges Charges,
) (*Order, error) {
	o := &Order{
		status:        New,
		paymentStatus: PaymentPending,
		createdAt:     time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setMethod(method),
		o.setAddress(address),
		o.setItems(items),
		o.setCharges(charges),
	); err != nil {
		return nil, err
	}

	o.appendActivity(New.String(), "Order placed by customer")
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its lifecycle position, payment state, partner assignment and
// activity log. Unlike NewOrder it does not append an activity entry.
func RestoreOrder(
	id kernel.OrderID,
	customerName string,
	customerPhone string,
	address string,
	items []ItemLine,
	method DeliveryMethod,
	charges Charges,
	status Status,
	paymentStatus PaymentStatus,
	transactionID *kernel.UUID,
	partnerID *kernel.UUID,
	createdAt time.Time,
	activityLog []ActivityEntry,
) (*Order, error) {
	o := &Order{
		createdAt:   createdAt,
		activityLog: activityLog,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setMethod(method),
		o.setAddress(address),
		o.setItems(items),
		o.setCharges(charges),
		o.setStatus(status),
		o.setPaymentStatus(paymentStatus),
		o.setTransactionID(transactionID),
		o.setPartnerID(partnerID),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Address returns the delivery address; empty for pickup orders.
func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []ItemLine {
	items := make([]ItemLine, len(o.items))
	copy(items, o.items)
	return items
}

// Charges returns the monetary components of the order.
func (o *Order) Charges() Charges {
	return o.charges
}

// Total returns the grand total: subtotal + tax + shipping.
func (o *Order) Total() float64 {
	return o.charges.Total()
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Method returns the delivery method chosen at checkout.
func (o *Order) Method() DeliveryMethod {
	return o.method
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TransactionID returns the payment transaction id, nil while unpaid.
func (o *Order) TransactionID() *kernel.UUID {
	return o.transactionID
}

// Partner returns the assigned delivery partner's id, nil if unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ActivityLog returns a copy of the append-only activity log.
func (o *Order) ActivityLog() []ActivityEntry {
	log := make([]ActivityEntry, len(o.activityLog))
	copy(log, o.activityLog)
	return log
}

// ChangeStatus applies a lifecycle transition.
//
// The move must be permitted by the status graph; re-applying the current
// status is allowed and still logged, so the activity log grows by exactly
// one entry per successful call. When actingPartnerID is supplied (a
// delivery partner claiming or completing the order) it overwrites the
// assigned partner reference.
//
// Returns a ValueIsInvalidError naming the rejected transition when the
// graph forbids the move; the order is left unchanged in that case.
func (o *Order) ChangeStatus(next Status, actingPartnerID *kernel.UUID) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if actingPartnerID != nil {
		if err := actingPartnerID.Validate(); err != nil {
			return err
		}
		id := *actingPartnerID
		o.partnerID = &id
	}

	o.status = newStatus
	o.appendActivity(newStatus.String(), fmt.Sprintf("Status changed to %s", newStatus))
	return nil
}

// AssignPartner records the delivery partner responsible for the order.
// A freshly placed order is moved to Accepted; orders further along the
// lifecycle keep their status. Returns ErrOrderIsClosed for terminal orders.
func (o *Order) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	if o.status == New {
		o.status = Accepted
	}
	o.partnerID = &partnerID
	o.appendActivity(o.status.String(), fmt.Sprintf("Assigned to delivery partner %s", partnerID))
	return nil
}

// MarkPaid records a received payment with its transaction id.
// Returns ErrOrderAlreadyPaid when the order is already paid.
func (o *Order) MarkPaid(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	if o.paymentStatus == PaymentPaid {
		return ErrOrderAlreadyPaid
	}

	o.paymentStatus = PaymentPaid
	o.transactionID = &transactionID
	o.appendActivity("PAYMENT_RECEIVED", fmt.Sprintf("Transaction ID: %s", transactionID))
	return nil
}

func (o *Order) appendActivity(status, message string) {
	o.activityLog = append(o.activityLog, ActivityEntry{
		status:     status,
		occurredAt: time.Now().UTC(),
		message:    message,
	})
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setMethod(method DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.method = method
	return nil
}

// setAddress relies on setMethod having run first: the address requirement
// depends on the delivery method.
func (o *Order) setAddress(address string) error {
	if o.method == HomeDelivery && address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []ItemLine) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]ItemLine, len(items))
	copy(o.items, items)
	return nil
}

// setCharges relies on setItems having run first: the subtotal consistency
// check needs the line items.
func (o *Order) setCharges(charges Charges) error {
	if err := charges.Validate(); err != nil {
		return err
	}

	var itemsTotal float64
	for _, item := range o.items {
		itemsTotal += item.LineTotal()
	}
	if math.Abs(charges.Subtotal()-itemsTotal) > moneyTolerance {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%f does not match the sum of item line totals %f", charges.Subtotal(), itemsTotal))
	}

	o.charges = charges
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setTransactionID(transactionID *kernel.UUID) error {
	if transactionID == nil {
		return nil
	}
	if err := transactionID.Validate(); err != nil {
		return err
	}
	id := *transactionID
	o.transactionID = &id
	return nil
}

func (o *Order) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID == nil {
		return nil
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}
	id := *partnerID
	o.partnerID = &id
	return nil
}

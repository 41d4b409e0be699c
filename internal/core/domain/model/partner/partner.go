package partner

import (
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/pkg/errs"
	"bakeshop/internal/pkg/guard"
)

// Performance score bounds.
const (
	PerformanceScoreMin float64 = 0
	PerformanceScoreMax float64 = 5
)

// Domain errors for delivery partner operations.
var (
	// ErrNameIsRequired is returned when onboarding a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when onboarding a partner without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New(
		"DeliveryPartner must be created via NewDeliveryPartner or RestoreDeliveryPartner constructor")
	// ErrOrderAlreadyTaken is returned when assigning an order the partner already carries.
	ErrOrderAlreadyTaken = errors.New("order is already assigned to this partner")
	// ErrOrderNotCarried is returned when releasing an order the partner does not carry.
	ErrOrderNotCarried = errors.New("order is not assigned to this partner")
)

// DeliveryPartner is the aggregate root for a courier in the bakery fleet.
//
// Business rules:
//   - must have a valid UUID, non-empty name and phone
//   - performance score stays within [0, 5]
//   - the same order cannot be taken twice
//   - newly onboarded partners start offline
//
// The list of current orders holds weak references: the Order aggregates
// are owned elsewhere and only linked by id.
type DeliveryPartner struct {
	id    kernel.UUID
	name  string
	phone string

	availability     Availability
	performanceScore float64
	currentOrders    []kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDeliveryPartner onboards a new delivery partner. The partner starts
// offline with no assigned orders.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name, phone: contact details (non-empty)
//   - performanceScore: initial rating within [0, 5]
//
// Returns an aggregated validation error when any rule is violated.
func NewDeliveryPartner(id kernel.UUID, name, phone string, performanceScore float64) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		availability: Offline,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setPerformanceScore(performanceScore),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a DeliveryPartner aggregate from
// persistent storage, including availability and current assignments.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name string,
	phone string,
	availability Availability,
	performanceScore float64,
	currentOrders []kernel.OrderID,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setAvailability(availability),
		p.setPerformanceScore(performanceScore),
		p.setCurrentOrders(currentOrders),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the DeliveryPartner was created through a constructor.
func (p *DeliveryPartner) Validate() error {
	if p == nil || p.guard.Validate(ErrPartnerIsNotConstructed) != nil {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by their identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// Phone returns the partner's phone number.
func (p *DeliveryPartner) Phone() string {
	return p.phone
}

// Availability returns whether the partner is online or offline.
func (p *DeliveryPartner) Availability() Availability {
	return p.availability
}

// IsOnline reports whether the partner is accepting assignments.
func (p *DeliveryPartner) IsOnline() bool {
	return p.availability == Online
}

// PerformanceScore returns the partner's rating within [0, 5].
func (p *DeliveryPartner) PerformanceScore() float64 {
	return p.performanceScore
}

// CurrentOrders returns a copy of the ids of currently assigned orders.
func (p *DeliveryPartner) CurrentOrders() []kernel.OrderID {
	orders := make([]kernel.OrderID, len(p.currentOrders))
	copy(orders, p.currentOrders)
	return orders
}

// OrderCount returns the number of currently assigned orders.
func (p *DeliveryPartner) OrderCount() int {
	return len(p.currentOrders)
}

// ToggleAvailability flips the partner between online and offline and
// returns the new availability.
func (p *DeliveryPartner) ToggleAvailability() Availability {
	p.availability = p.availability.Toggle()
	return p.availability
}

// TakeOrder adds an order to the partner's current assignments.
// Returns ErrOrderAlreadyTaken when the order is already carried.
func (p *DeliveryPartner) TakeOrder(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if p.carries(orderID) {
		return ErrOrderAlreadyTaken
	}

	p.currentOrders = append(p.currentOrders, orderID)
	return nil
}

// ReleaseOrder removes an order from the partner's current assignments,
// typically when the order reaches a terminal state.
// Returns ErrOrderNotCarried when the order is not assigned to this partner.
func (p *DeliveryPartner) ReleaseOrder(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	for i, id := range p.currentOrders {
		if id.IsEqual(orderID) {
			p.currentOrders = append(p.currentOrders[:i], p.currentOrders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotCarried
}

func (p *DeliveryPartner) carries(orderID kernel.OrderID) bool {
	for _, id := range p.currentOrders {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	p.phone = phone
	return nil
}

func (p *DeliveryPartner) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	p.availability = availability
	return nil
}

func (p *DeliveryPartner) setPerformanceScore(score float64) error {
	if score < PerformanceScoreMin || score > PerformanceScoreMax {
		return errs.NewValueIsOutOfRangeError("performance score", score, PerformanceScoreMin, PerformanceScoreMax)
	}
	p.performanceScore = score
	return nil
}

func (p *DeliveryPartner) setCurrentOrders(orders []kernel.OrderID) error {
	for _, id := range orders {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	p.currentOrders = make([]kernel.OrderID, len(orders))
	copy(p.currentOrders, orders)
	return nil
}

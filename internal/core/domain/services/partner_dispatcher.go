package services

import (
	"errors"

	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no suitable delivery partner is available
// for order dispatch. This occurs when either no partners are provided or none
// of the provided partners is online.
var ErrPartnerNotFound = errors.New("delivery partner not found")

// PartnerDispatcher is a domain service responsible for finding and assigning
// the best delivery partner for a home delivery order.
//
// Business rules:
//   - Orders must be valid before dispatch
//   - Only online partners are considered
//   - Selection prioritizes the smallest current workload
//   - Ties are broken by the higher performance score
//   - Order assignment is atomic: the partner takes the order and the order
//     records the partner in one step
type PartnerDispatcher struct{}

// NewPartnerDispatcher creates a new PartnerDispatcher instance.
func NewPartnerDispatcher() PartnerDispatcher {
	return PartnerDispatcher{}
}

// Dispatch finds the best partner for a given order and executes the
// assignment workflow.
//
// Parameters:
//   - o: the order to be dispatched (must be valid)
//   - partners: slice of candidate partners to consider
//
// Returns:
//   - *partner.DeliveryPartner: the partner assigned to the order
//   - error: ErrPartnerNotFound if no online partner exists, or
//     validation/assignment errors
func (d PartnerDispatcher) Dispatch(
	o *order.Order,
	partners []*partner.DeliveryPartner,
) (*partner.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestPartner(partners)
	if err != nil {
		return nil, err
	}

	if err = best.TakeOrder(o.ID()); err != nil {
		return nil, err
	}

	if err = o.AssignPartner(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestPartner searches the candidates for the online partner with the
// fewest current orders, breaking ties by performance score.
func (d PartnerDispatcher) findBestPartner(
	partners []*partner.DeliveryPartner,
) (*partner.DeliveryPartner, error) {
	var best *partner.DeliveryPartner

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsOnline() {
			continue
		}

		if best == nil ||
			p.OrderCount() < best.OrderCount() ||
			(p.OrderCount() == best.OrderCount() && p.PerformanceScore() > best.PerformanceScore()) {
			best = p
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}

	return best, nil
}

package commands

import (
	"context"

	"bakeshop/internal/core/domain/model/order"
)

// AssignPartnerCommandHandler handles explicit order-to-partner assignments.
// Updates both aggregates within a single transaction: the partner takes the
// order and the order records the partner.
//
// Example:
//
//	handler := NewAssignPartnerCommandHandler(uowFactory)
//	cmd, _ := NewAssignPartnerCommand(orderID, partnerID)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order or partner
//	}
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPartnerCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Loads both aggregates, wires the assignment on each side, and persists the
// pair atomically. Returns the updated order.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	assigned, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	carrier, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = carrier.TakeOrder(assigned.ID()); err != nil {
		return nil, err
	}

	if err = assigned.AssignPartner(carrier.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, assigned); err != nil {
		return nil, err
	}

	if err = partnerRepo.Update(ctx, carrier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}

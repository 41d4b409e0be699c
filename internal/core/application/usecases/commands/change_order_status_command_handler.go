package commands

import (
	"context"
	"errors"

	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/core/domain/model/partner"
	"bakeshop/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Loads the order, applies the transition through the aggregate, and keeps
// the assigned partner's workload in sync: when an order reaches a terminal
// status it is released from the partner's current orders.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Delivered, &partnerID)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order id
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// Requires a UoWFactory because terminal transitions touch both the order
// and the partner aggregates.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns the updated order, errs.ErrObjectNotFound when the order does not
// exist, or the transition error when the move is not permitted.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = updated.ChangeStatus(cmd.Status(), cmd.PartnerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if cmd.Status().IsTerminal() && updated.Partner() != nil {
		if err = h.releaseFromPartner(ctx, uow, updated); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// releaseFromPartner removes a finished order from the assigned partner's
// workload. A missing partner record or an order the partner no longer
// carries is not an error: the workload is already consistent.
func (h ChangeOrderStatusCommandHandler) releaseFromPartner(
	ctx context.Context,
	uow UoW,
	updated *order.Order,
) error {
	partnerRepo := uow.PartnerRepository()

	assigned, err := partnerRepo.Get(ctx, *updated.Partner())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = assigned.ReleaseOrder(updated.ID()); err != nil {
		if errors.Is(err, partner.ErrOrderNotCarried) {
			return nil
		}
		return err
	}

	return partnerRepo.Update(ctx, assigned)
}

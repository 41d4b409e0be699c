package commands

import (
	"context"
	"errors"

	"bakeshop/internal/core/domain/services"
)

var (
	ErrNoOnlinePartnersFound = errors.New("no online partners found")
	ErrNoOrdersToDispatch    = errors.New("no orders ready for dispatch")
)

// DispatchOrdersCommandHandler orchestrates the automatic assignment process.
// Finds ready home delivery orders without a partner and matches them with
// online partners using the PartnerDispatcher selection rules.
// Ensures transactional consistency when updating both order and partner states.
//
// Example:
//
//	handler := NewDispatchOrdersCommandHandler(uowFactory)
//	cmd := NewDispatchOrdersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrdersToDispatch):
//	    log.Println("Nothing waiting for a partner")
//	case errors.Is(err, ErrNoOnlinePartnersFound):
//	    log.Println("All partners are offline")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchOrdersCommandHandler creates a handler for automatic dispatch.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchOrdersCommandHandler(uowFactory UoWFactory) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Retrieves the ready unassigned orders and the online partners, then hands
// each order to the best partner. All updates share a single transaction.
// Returns ErrNoOrdersToDispatch or ErrNoOnlinePartnersFound when there is
// nothing to match.
func (h DispatchOrdersCommandHandler) Handle(ctx context.Context, command DispatchOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	pending, err := orderRepo.GetAllReadyForDispatch(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoOrdersToDispatch
	}

	candidates, err := partnerRepo.GetAllOnline(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return ErrNoOnlinePartnersFound
	}

	dispatcher := services.NewPartnerDispatcher()
	for _, waiting := range pending {
		carrier, dispatchErr := dispatcher.Dispatch(waiting, candidates)
		if errors.Is(dispatchErr, services.ErrPartnerNotFound) {
			break
		}
		if dispatchErr != nil {
			return dispatchErr
		}

		if err = orderRepo.Update(ctx, waiting); err != nil {
			return err
		}

		if err = partnerRepo.Update(ctx, carrier); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

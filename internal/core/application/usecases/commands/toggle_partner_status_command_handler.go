package commands

import (
	"context"

	"bakeshop/internal/core/domain/model/partner"
)

// TogglePartnerStatusCommandHandler handles availability toggles.
// Loads the partner, flips the availability through the aggregate and
// persists the change.
//
// Example:
//
//	handler := NewTogglePartnerStatusCommandHandler(uowFactory)
//	cmd, _ := NewTogglePartnerStatusCommand(partnerID)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown partner id
//	}
type TogglePartnerStatusCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewTogglePartnerStatusCommandHandler creates a handler for availability toggles.
// Requires a PartnerUoWFactory for transactional persistence.
func NewTogglePartnerStatusCommandHandler(uowFactory PartnerUoWFactory) TogglePartnerStatusCommandHandler {
	return TogglePartnerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
// Returns the updated partner, or errs.ErrObjectNotFound when the partner
// does not exist.
func (h TogglePartnerStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TogglePartnerStatusCommand,
) (*partner.DeliveryPartner, error) {
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

	partnerRepo := uow.PartnerRepository()

	updated, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	updated.ToggleAvailability()

	if err = partnerRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

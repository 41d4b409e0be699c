package commands

import (
	"context"

	"bakeshop/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler handles delivery partner onboarding.
// Creates the partner aggregate in offline status and persists it.
//
// Example:
//
//	handler := NewCreatePartnerCommandHandler(uowFactory)
//	cmd, _ := NewCreatePartnerCommand("Ravi Kumar", "+91-987...", 4.5)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("partner onboarding failed: %w", err)
//	}
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner onboarding.
// Requires a PartnerUoWFactory for transactional persistence.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command.
// Returns the created partner on success.
func (h CreatePartnerCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePartnerCommand,
) (*partner.DeliveryPartner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := partner.NewDeliveryPartner(cmd.PartnerID(), cmd.Name(), cmd.Phone(), cmd.PerformanceScore())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

package commands

import (
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/pkg/guard"
)

var ErrTogglePartnerStatusCommandIsNotConstructed = errors.New(
	"TogglePartnerStatusCommand must be created via NewTogglePartnerStatusCommand constructor",
)

// TogglePartnerStatusCommand represents a partner going online or offline
// from the delivery portal.
//
// Example:
//
//	cmd, err := NewTogglePartnerStatusCommand(partnerID)
//	if err != nil {
//	    return fmt.Errorf("invalid toggle request: %w", err)
//	}
//
//	handler := NewTogglePartnerStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type TogglePartnerStatusCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTogglePartnerStatusCommand creates a command to flip a partner's availability.
// Validates the partner identifier.
func NewTogglePartnerStatusCommand(partnerID kernel.UUID) (TogglePartnerStatusCommand, error) {
	command := TogglePartnerStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPartnerID(partnerID); err != nil {
		return TogglePartnerStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTogglePartnerStatusCommandIsNotConstructed if validation fails.
func (c TogglePartnerStatusCommand) Validate() error {
	return c.guard.Validate(ErrTogglePartnerStatusCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to toggle.
func (c TogglePartnerStatusCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *TogglePartnerStatusCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

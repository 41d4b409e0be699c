package commands

import (
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents an explicit request to hand an order to a
// specific delivery partner, as done from the admin portal. The automatic
// counterpart is DispatchOrdersCommand.
//
// Example:
//
//	cmd, err := NewAssignPartnerCommand(orderID, partnerID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignPartnerCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign an order to a partner.
// Validates both identifiers.
func NewAssignPartnerCommand(orderID kernel.OrderID, partnerID kernel.UUID) (AssignPartnerCommand, error) {
	command := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPartnerID(partnerID),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPartnerCommandIsNotConstructed if validation fails.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignPartnerCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// PartnerID returns the identifier of the chosen delivery partner.
func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *AssignPartnerCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

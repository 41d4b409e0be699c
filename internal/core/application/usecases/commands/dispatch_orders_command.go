package commands

import (
	"errors"

	"bakeshop/internal/pkg/guard"
)

var ErrDispatchOrdersCommandIsNotConstructed = errors.New(
	"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
)

// DispatchOrdersCommand triggers automatic assignment of ready home delivery
// orders to the best available delivery partners. This command represents the
// business operation of matching delivery resources with finished orders.
//
// Example:
//
//	cmd := NewDispatchOrdersCommand()
//	handler := NewDispatchOrdersCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to dispatch or no available partners: %v", err)
//	}
type DispatchOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a new command to trigger order dispatch.
// This is a parameterless command that initiates the partner-order matching process.
func NewDispatchOrdersCommand() DispatchOrdersCommand {
	return DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrdersCommandIsNotConstructed if validation fails.
func (c *DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchOrdersCommandIsNotConstructed,
	)
}

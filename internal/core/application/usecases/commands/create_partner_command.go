package commands

import (
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// CreatePartnerCommand represents a request to onboard a new delivery partner.
// Encapsulates the partner's contact details and starting performance score.
//
// Example:
//
//	cmd, err := NewCreatePartnerCommand("Ravi Kumar", "+91-987...", 4.5)
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
//
//	handler := NewCreatePartnerCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	fmt.Printf("Partner %s onboarded", cmd.PartnerID())
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID        kernel.UUID
	name             string
	phone            string
	performanceScore float64

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to onboard a delivery partner.
// Automatically generates a unique ID for the partner. Validates that name
// and phone are not empty; the score bounds are enforced by the aggregate.
func NewCreatePartnerCommand(name, phone string, performanceScore float64) (CreatePartnerCommand, error) {
	command := CreatePartnerCommand{
		performanceScore: performanceScore,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the generated identifier for the new partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Phone returns the partner's phone number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// PerformanceScore returns the partner's starting rating.
func (c CreatePartnerCommand) PerformanceScore() float64 {
	return c.performanceScore
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

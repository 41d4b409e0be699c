package queries

import (
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/pkg/guard"
)

var (
	ErrGetAllPartnersQueryIsNotConstructed = errors.New(
		"GetAllPartnersQuery must be created via NewGetAllPartnersQuery constructor",
	)
)

// GetAllPartnersQuery retrieves information about all delivery partners.
// Returns partner identities, availability and current workload for the
// dispatch dashboard.
//
// Example:
//
//	query := NewGetAllPartnersQuery()
//	handler := NewGetAllPartnersQueryHandler(db)
//
//	partners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve partners: %w", err)
//	}
//
//	for _, partner := range partners {
//	    fmt.Printf("%s (%s) carrying %d orders\n",
//	        partner.Name, partner.Availability, len(partner.CurrentOrders))
//	}
type GetAllPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPartnersQuery creates a query to retrieve all delivery partners.
// This is a parameterless query that fetches the complete partner list.
func NewGetAllPartnersQuery() GetAllPartnersQuery {
	return GetAllPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPartnersQueryIsNotConstructed if validation fails.
func (q GetAllPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPartnersQueryIsNotConstructed)
}

// GetAllPartnersQueryResponse represents delivery partner information in the
// read model. Contains essential partner data for display and dispatching.
type GetAllPartnersQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Phone            string
	Availability     string
	PerformanceScore float64
	CurrentOrders    []string
}

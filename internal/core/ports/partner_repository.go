// Package ports defines repository interfaces for the bakery ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates. Provides methods for storing, retrieving, and querying partners
// with their complete state including current order assignments.
type PartnerRepository interface {
	// Add persists a new delivery partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing delivery partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a delivery partner aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetAll retrieves every delivery partner.
	GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// GetAllOnline retrieves the partners currently accepting assignments.
	// Used by the assignment job to build the dispatch candidate list.
	GetAllOnline(ctx context.Context) ([]*partner.DeliveryPartner, error)
}

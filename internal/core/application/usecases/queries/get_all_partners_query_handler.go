package queries

import (
	"context"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllPartnersQueryHandler retrieves all delivery partner information from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetAllPartnersQueryHandler(db)
//	query := NewGetAllPartnersQuery()
//
//	partners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get partners: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d partners\n", len(partners))
type GetAllPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPartnersQueryHandler creates a handler for partner retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllPartnersQueryHandler(db *gorm.DB) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all delivery partners.
// Returns a slice of partner read models sorted by name.
// The carried order ids are scanned straight out of the text[] column.
func (h GetAllPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPartnersQuery,
) ([]GetAllPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAllPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			availability,
			performance_score,
			current_orders
		FROM partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllPartnersQueryResponse
		var id uuid.UUID
		var availability int
		var currentOrders pq.StringArray

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&availability,
			&resp.PerformanceScore,
			&currentOrders,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = partnerID
		resp.Availability = partner.Availability(availability).String()
		resp.CurrentOrders = currentOrders

		partners = append(partners, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

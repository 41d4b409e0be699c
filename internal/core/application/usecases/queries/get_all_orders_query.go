// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"bakeshop/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order in the system, newest first.
// Returns complete order read models for the storefront order list and
// the kitchen dashboard.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//
//	for _, order := range orders {
//	    fmt.Printf("%s %s %.2f\n", order.ID, order.Status, order.Total)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order in the read model.
// Statuses are rendered as their string form so the response can be
// serialized without touching the domain packages.
type GetAllOrdersQueryResponse struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Address       string
	Method        string
	Status        string
	PaymentStatus string
	TransactionID *uuid.UUID
	PartnerID     *uuid.UUID
	Subtotal      float64
	Tax           float64
	Shipping      float64
	Total         float64
	Items         []OrderItemResponse
	ActivityLog   []OrderActivityResponse
	CreatedAt     time.Time
}

// OrderItemResponse is one cart line in the order read model.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// OrderActivityResponse is one activity log record in the order read model.
type OrderActivityResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

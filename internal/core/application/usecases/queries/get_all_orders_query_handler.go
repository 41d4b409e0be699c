package queries

import (
	"context"
	"encoding/json"

	"bakeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all order information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Returns a slice of order read models sorted newest first.
// The JSONB items and activity log columns are unpacked into the read model.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone,
			address,
			method,
			status,
			payment_status,
			transaction_id,
			partner_id,
			subtotal,
			tax,
			shipping,
			items,
			activity_log,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var method, status, paymentStatus int
		var transactionID, partnerID uuid.NullUUID
		var itemsRaw, activityRaw []byte

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Address,
			&method,
			&status,
			&paymentStatus,
			&transactionID,
			&partnerID,
			&resp.Subtotal,
			&resp.Tax,
			&resp.Shipping,
			&itemsRaw,
			&activityRaw,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Method = order.DeliveryMethod(method).String()
		resp.Status = order.Status(status).String()
		resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
		resp.Total = resp.Subtotal + resp.Tax + resp.Shipping

		if transactionID.Valid {
			id := transactionID.UUID
			resp.TransactionID = &id
		}
		if partnerID.Valid {
			id := partnerID.UUID
			resp.PartnerID = &id
		}

		if len(itemsRaw) > 0 {
			if err = json.Unmarshal(itemsRaw, &resp.Items); err != nil {
				return nil, err
			}
		}
		if len(activityRaw) > 0 {
			if err = json.Unmarshal(activityRaw, &resp.ActivityLog); err != nil {
				return nil, err
			}
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line items and the activity log are stored as JSONB documents; the
// money components live in dedicated columns so read models can aggregate
// without unpacking JSON.
type OrderDTO struct {
	ID            string `gorm:"type:text;primaryKey"`
	CustomerName  string
	CustomerPhone string
	Address       string
	Method        int
	Status        int `gorm:"index"`
	PaymentStatus int
	TransactionID *uuid.UUID `gorm:"type:uuid"`
	PartnerID     *uuid.UUID `gorm:"type:uuid;index"`
	Subtotal      float64
	Tax           float64
	Shipping      float64
	Items         []ItemLineDTO      `gorm:"type:jsonb;serializer:json"`
	ActivityLog   []ActivityEntryDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemLineDTO is the JSON shape of one cart line inside the items column.
type ItemLineDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// ActivityEntryDTO is the JSON shape of one activity log record.
type ActivityEntryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional payment and partner references.
func fromDomain(aggregate *order.Order) OrderDTO {
	var transactionID *uuid.UUID
	if id := aggregate.TransactionID(); id != nil {
		raw := id.Bytes()
		transactionID = &raw
	}

	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := make([]ItemLineDTO, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, ItemLineDTO{
			ProductID: line.ProductID(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	log := make([]ActivityEntryDTO, 0, len(aggregate.ActivityLog()))
	for _, entry := range aggregate.ActivityLog() {
		log = append(log, ActivityEntryDTO{
			Status:    entry.Status(),
			Timestamp: entry.OccurredAt(),
			Message:   entry.Message(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		Address:       aggregate.Address(),
		Method:        int(aggregate.Method()),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		TransactionID: transactionID,
		PartnerID:     partnerID,
		Subtotal:      aggregate.Charges().Subtotal(),
		Tax:           aggregate.Charges().Tax(),
		Shipping:      aggregate.Charges().Shipping(),
		Items:         items,
		ActivityLog:   log,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its activity log using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var transactionID *kernel.UUID
	if dto.TransactionID != nil {
		tID, txnErr := kernel.UUIDFromBytes((*dto.TransactionID)[:])
		if txnErr != nil {
			return nil, txnErr
		}
		transactionID = &tID
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	items := make([]order.ItemLine, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, lineErr := order.NewItemLine(line.ProductID, line.Name, line.UnitPrice, line.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, item)
	}

	charges, err := order.NewCharges(dto.Subtotal, dto.Tax, dto.Shipping)
	if err != nil {
		return nil, err
	}

	log := make([]order.ActivityEntry, 0, len(dto.ActivityLog))
	for _, record := range dto.ActivityLog {
		entry, entryErr := order.NewActivityEntry(record.Status, record.Timestamp, record.Message)
		if entryErr != nil {
			return nil, entryErr
		}
		log = append(log, entry)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.Address,
		items,
		order.DeliveryMethod(dto.Method),
		charges,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		transactionID,
		partnerID,
		dto.CreatedAt,
		log,
	)
}

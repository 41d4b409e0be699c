// Package partnerrepo provides data transfer objects and mapping functions for
// delivery partner persistence. This package implements the repository pattern
// for the partner domain aggregate, handling the conversion between domain
// entities and database representations.
package partnerrepo

import (
	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting delivery partner
// aggregates. The current order assignments are stored as a Postgres text
// array of order ids.
type PartnerDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Phone            string         `gorm:"type:varchar(32);not null"`
	Availability     int            `gorm:"type:int;not null;index"`
	PerformanceScore float64        `gorm:"type:numeric(3,1);not null"`
	CurrentOrders    pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	currentOrders := make(pq.StringArray, 0, len(aggregate.CurrentOrders()))
	for _, orderID := range aggregate.CurrentOrders() {
		currentOrders = append(currentOrders, orderID.String())
	}

	return PartnerDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Phone:            aggregate.Phone(),
		Availability:     int(aggregate.Availability()),
		PerformanceScore: aggregate.PerformanceScore(),
		CurrentOrders:    currentOrders,
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the complete aggregate including assignments using RestoreDeliveryPartner.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	currentOrders := make([]kernel.OrderID, 0, len(dto.CurrentOrders))
	for _, raw := range dto.CurrentOrders {
		orderID, orderErr := kernel.OrderIDFromString(raw)
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrders = append(currentOrders, orderID)
	}

	return partner.RestoreDeliveryPartner(
		id,
		dto.Name,
		dto.Phone,
		partner.Availability(dto.Availability),
		dto.PerformanceScore,
		currentOrders,
	)
}

// Package orderrepo provides GORM-based persistence for the order aggregate.
// It maps between the domain model and the relational representation, storing
// statuses under their canonical names so the rows stay readable in support
// queries.
package orderrepo

import (
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RequesterID    uuid.UUID        `gorm:"type:uuid;index"`
	ServiceID      uuid.UUID        `gorm:"type:uuid"`
	CompanyID      uuid.UUID        `gorm:"type:uuid;index"`
	Status         string           `gorm:"type:varchar(32);index"`
	EstimatedPrice *decimal.Decimal `gorm:"type:decimal(14,2)"`
	FinalPrice     *decimal.Decimal `gorm:"type:decimal(14,2)"`
	Notes          string           `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		RequesterID:    aggregate.RequesterID().Bytes(),
		ServiceID:      aggregate.ServiceID().Bytes(),
		CompanyID:      aggregate.CompanyID().Bytes(),
		Status:         aggregate.Status().String(),
		EstimatedPrice: priceToDecimal(aggregate.EstimatedPrice()),
		FinalPrice:     priceToDecimal(aggregate.FinalPrice()),
		Notes:          aggregate.Notes(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	estimatedPrice, err := decimalToPrice(dto.EstimatedPrice)
	if err != nil {
		return nil, err
	}

	finalPrice, err := decimalToPrice(dto.FinalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		requesterID,
		serviceID,
		companyID,
		status,
		estimatedPrice,
		finalPrice,
		dto.Notes,
		dto.CreatedAt,
	)
}

func priceToDecimal(price *kernel.Price) *decimal.Decimal {
	if price == nil {
		return nil
	}
	amount := price.Amount()
	return &amount
}

func decimalToPrice(amount *decimal.Decimal) (*kernel.Price, error) {
	if amount == nil {
		return nil, nil
	}

	price, err := kernel.NewPrice(*amount)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

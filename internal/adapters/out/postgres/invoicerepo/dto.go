// Package invoicerepo provides GORM-based persistence for the invoice
// aggregate. Two unique indexes back the billing invariants: one on the
// order reference enforces one invoice per order, one on the invoice number
// catches daily sequence collisions so the issuer can retry with the next
// value.
package invoicerepo

import (
	"time"

	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice aggregates.
type InvoiceDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_invoices_order_id"`
	Number   string          `gorm:"type:varchar(32);uniqueIndex:idx_invoices_number"`
	Amount   decimal.Decimal `gorm:"type:decimal(14,2)"`
	IssuedAt time.Time       `gorm:"index"`
	DueDate  time.Time
	Status   string `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		Number:   aggregate.Number(),
		Amount:   aggregate.Amount().Amount(),
		IssuedAt: aggregate.IssuedAt(),
		DueDate:  aggregate.DueDate(),
		Status:   aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewPrice(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		orderID,
		dto.Number,
		amount,
		dto.IssuedAt,
		dto.DueDate,
		status,
	)
}

package invoice

import (
	"errors"
	"fmt"
	"time"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"
	"rescue/internal/pkg/guard"
)

// paymentTerm is the period between issuing an invoice and its due date.
const paymentTerm = 14 * 24 * time.Hour

// ErrInvoiceIsNotConstructed is returned when using an improperly
// initialized Invoice.
var ErrInvoiceIsNotConstructed = errors.New(
	"Invoice must be created via NewInvoice or RestoreInvoice constructor")

// Invoice is the billing record generated when an order completes its repair.
// Exactly one invoice exists per order; the uniqueness is enforced by the
// persistence layer inside the same atomic unit as the order transition,
// and a second generation attempt is an invariant violation, not a race to
// resolve silently.
type Invoice struct {
	// id uniquely identifies the invoice
	id kernel.UUID
	// orderID references the invoiced order (one-to-one)
	orderID kernel.UUID
	// number is the generated invoice number, e.g. INV-20260901-0007
	number string
	// amount equals the order's final price
	amount kernel.Price
	// issuedAt is the generation timestamp
	issuedAt time.Time
	// dueDate is issuedAt plus the payment term
	dueDate time.Time
	// status is the billing state
	status Status

	guard guard.ConstructorGuard
}

// FormatNumber builds an invoice number from the issue date and a daily
// sequence value: INV-<yyyymmdd>-<sequence, zero padded to 4 digits>.
func FormatNumber(issuedAt time.Time, sequence int) string {
	return fmt.Sprintf("INV-%s-%04d", issuedAt.Format("20060102"), sequence)
}

// NewInvoice creates a Pending invoice for an order. The sequence value is
// supplied by the generator; it must be positive. Amount must be a valid
// positive price (the order's final price).
func NewInvoice(id kernel.UUID, orderID kernel.UUID, amount kernel.Price, sequence int) (*Invoice, error) {
	if sequence <= 0 {
		return nil, errs.NewValueIsInvalidError("invoice sequence")
	}

	issuedAt := time.Now().UTC()
	inv := &Invoice{
		number:   FormatNumber(issuedAt, sequence),
		issuedAt: issuedAt,
		dueDate:  issuedAt.Add(paymentTerm),
		status:   Pending,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persistent storage.
func RestoreInvoice(
	id kernel.UUID,
	orderID kernel.UUID,
	number string,
	amount kernel.Price,
	issuedAt time.Time,
	dueDate time.Time,
	status Status,
) (*Invoice, error) {
	inv := &Invoice{
		issuedAt: issuedAt,
		dueDate:  dueDate,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setNumber(number),
		inv.setAmount(amount),
		inv.setStatus(status),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate checks if the Invoice was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the invoiced order.
func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

// Number returns the generated invoice number.
func (i *Invoice) Number() string {
	return i.number
}

// Amount returns the invoiced amount.
func (i *Invoice) Amount() kernel.Price {
	return i.amount
}

// IssuedAt returns the generation timestamp.
func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

// DueDate returns the payment due date.
func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

// Status returns the billing state.
func (i *Invoice) Status() Status {
	return i.status
}

// MarkPaid settles the invoice. Allowed while Pending or Overdue.
func (i *Invoice) MarkPaid() error {
	newStatus, err := i.status.MarkPaid()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// MarkOverdue flags a pending invoice whose due date has passed.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if now.Before(i.dueDate) {
		return errs.NewInvalidStateError("markOverdue", "due date not reached")
	}

	newStatus, err := i.status.MarkOverdue()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

// Cancel voids the invoice. Allowed while Pending or Overdue.
func (i *Invoice) Cancel() error {
	newStatus, err := i.status.Cancel()
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	i.orderID = id
	return nil
}

func (i *Invoice) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	i.number = number
	return nil
}

func (i *Invoice) setAmount(amount kernel.Price) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

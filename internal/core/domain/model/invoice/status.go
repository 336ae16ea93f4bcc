package invoice

import (
	"rescue/internal/pkg/errs"
)

// Status represents the billing state of an invoice.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	          ├──> Cancelled
//	          └──> Overdue ──┬──> Paid
//	                         └──> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the invoice awaits payment.
	Pending

	// Paid means the invoice was settled. Terminal.
	Paid

	// Cancelled means the invoice was voided. Terminal.
	Cancelled

	// Overdue means the due date passed without payment.
	Overdue
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Paid:      "PAID",
		Cancelled: "CANCELLED",
		Overdue:   "OVERDUE",
	}
}

// StatusFromString parses a canonical status name as stored in the database.
func StatusFromString(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("invoice status")
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("invoice status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("invoice status")
	}
	return nil
}

// String returns the canonical name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarkPaid transitions Pending or Overdue -> Paid.
func (s Status) MarkPaid() (Status, error) {
	if s != Pending && s != Overdue {
		return Unknown, errs.NewInvalidStateError("markPaid", s.String())
	}
	return Paid, nil
}

// MarkOverdue transitions Pending -> Overdue.
func (s Status) MarkOverdue() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateError("markOverdue", s.String())
	}
	return Overdue, nil
}

// Cancel transitions Pending or Overdue -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Overdue {
		return Unknown, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}

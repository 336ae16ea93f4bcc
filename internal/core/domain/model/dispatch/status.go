package dispatch

import (
	"rescue/internal/pkg/errs"
)

// Status represents the sub-state of a dispatch assignment.
//
// State transitions:
//
//	Dispatched ──> Arrived ──> InProgress ──> Completed
//	     │            │             │
//	     └────────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal; an assignment in any other sub-state
// is active.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Dispatched means the vehicle is on its way to the scene.
	Dispatched

	// Arrived means the vehicle reached the scene.
	Arrived

	// InProgress means the repair work is running.
	InProgress

	// Completed means the rescue finished normally. Terminal.
	Completed

	// Cancelled means the assignment was aborted and the vehicle released. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Dispatched: "DISPATCHED",
		Arrived:    "ARRIVED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses a canonical status name as stored in the database.
func StatusFromString(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("assignment status")
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("assignment status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("assignment status")
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

// IsActive reports whether the assignment sub-state is non-terminal.
func (s Status) IsActive() bool {
	switch s {
	case Dispatched, Arrived, InProgress:
		return true
	default:
		return false
	}
}

// Arrive transitions Dispatched -> Arrived.
func (s Status) Arrive() (Status, error) {
	if s != Dispatched {
		return Unknown, errs.NewInvalidStateError("arrive", s.String())
	}
	return Arrived, nil
}

// Start transitions Arrived -> InProgress.
func (s Status) Start() (Status, error) {
	if s != Arrived {
		return Unknown, errs.NewInvalidStateError("start", s.String())
	}
	return InProgress, nil
}

// Complete transitions any active sub-state -> Completed.
func (s Status) Complete() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewInvalidStateError("complete", s.String())
	}
	return Completed, nil
}

// Cancel transitions any active sub-state -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}

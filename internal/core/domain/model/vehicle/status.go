package vehicle

import (
	"rescue/internal/pkg/errs"
)

// Status represents the availability state of a rescue vehicle.
//
// State transitions:
//
//	Available ──> OnDuty ──> Available
//
// A vehicle is OnDuty if and only if it has an active dispatch assignment.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the vehicle is idle and can be dispatched.
	Available

	// OnDuty means the vehicle is bound to an active dispatch assignment.
	OnDuty
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		OnDuty:    "ON_DUTY",
	}
}

// StatusFromString parses a canonical status name as stored in the database.
func StatusFromString(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("vehicle status")
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Available && s != OnDuty {
		return errs.NewValueIsInvalidError("vehicle status")
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

// MarkOnDuty transitions Available -> OnDuty. Dispatching a vehicle that is
// already on duty is an invalid-state error, which guards against
// double-dispatch.
func (s Status) MarkOnDuty() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidStateError("markOnDuty", s.String())
	}
	return OnDuty, nil
}

// Release transitions OnDuty -> Available.
func (s Status) Release() (Status, error) {
	if s != OnDuty {
		return Unknown, errs.NewInvalidStateError("release", s.String())
	}
	return Available, nil
}

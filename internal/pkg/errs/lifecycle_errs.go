package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order lifecycle taxonomy.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvariantViolation = errors.New("invariant violation")
)

// UnauthorizedError indicates that an actor attempted an operation
// it is not allowed to perform. No state is changed.
type UnauthorizedError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError for the given actor and action.
func NewUnauthorizedError(actorID, action string) *UnauthorizedError {
	return &UnauthorizedError{
		ActorID: actorID,
		Action:  action,
	}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor is: %s, action is: %s (cause: %s)",
			ErrUnauthorized, e.ActorID, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: actor is: %s, action is: %s", ErrUnauthorized, e.ActorID, e.Action))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateError indicates that a transition was attempted from a state
// that does not match its precondition. The operation is a rejected no-op;
// this is the primary guard against double-processing.
type InvalidStateError struct {
	Operation string
	Current   string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for an operation
// rejected in the given current state.
func NewInvalidStateError(operation, current string) *InvalidStateError {
	return &InvalidStateError{
		Operation: operation,
		Current:   current,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed from %s (cause: %s)",
			ErrInvalidState, e.Operation, e.Current, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidState, e.Operation, e.Current))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvariantViolationError indicates that an operation would break a structural
// invariant, e.g. a second invoice for an order or a vehicle dispatched twice.
type InvariantViolationError struct {
	Invariant string
	Cause     error
}

// NewInvariantViolationError creates an InvariantViolationError naming the broken invariant.
func NewInvariantViolationError(invariant string) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant}
}

// NewInvariantViolationErrorWithCause creates an InvariantViolationError wrapping an underlying cause.
func NewInvariantViolationErrorWithCause(invariant string, cause error) *InvariantViolationError {
	return &InvariantViolationError{
		Invariant: invariant,
		Cause:     cause,
	}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvariantViolation, e.Invariant, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Invariant))
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

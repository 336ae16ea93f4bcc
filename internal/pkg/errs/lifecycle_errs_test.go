package errs_test

import (
	"errors"
	"testing"

	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("actor-1", "dispatchVehicle")

		assert.Equal(t, "actor-1", err.ActorID)
		assert.Equal(t, "dispatchVehicle", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "unauthorized: actor is: actor-1, action is: dispatchVehicle", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := errs.NewUnauthorizedError("actor-1", "acceptOrder")
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("accept", "PRICE_UPDATED")

		assert.Equal(t, "accept", err.Operation)
		assert.Equal(t, "PRICE_UPDATED", err.Current)
		assert.Equal(t, "invalid state: accept is not allowed from PRICE_UPDATED", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := errs.NewInvalidStateError("updatePrice", "CREATED")
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestInvariantViolationError(t *testing.T) {
	t.Run("NewInvariantViolationError", func(t *testing.T) {
		err := errs.NewInvariantViolationError("invoice already exists for order")

		assert.Equal(t, "invoice already exists for order", err.Invariant)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invariant violation: invoice already exists for order", err.Error())
		assert.Equal(t, errs.ErrInvariantViolation, err.Unwrap())
	})

	t.Run("NewInvariantViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewInvariantViolationErrorWithCause("one invoice per order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invariant violation: one invoice per order (cause: duplicate key value violates unique constraint)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvariantViolation)
	})
}

package dispatch_test

import (
	"testing"
	"time"

	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssignment(t *testing.T) *dispatch.Assignment {
	t.Helper()
	a, err := dispatch.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	t.Run("starts dispatched with timestamp", func(t *testing.T) {
		a := newTestAssignment(t)

		assert.Equal(t, dispatch.Dispatched, a.Status())
		assert.True(t, a.IsActive())
		assert.WithinDuration(t, time.Now().UTC(), a.DispatchedAt(), time.Minute)
		assert.Nil(t, a.ArrivedAt())
		assert.Nil(t, a.CompletedAt())
	})

	t.Run("requires order and vehicle references", func(t *testing.T) {
		_, err := dispatch.NewAssignment(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = dispatch.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAssignment_MarkArrived(t *testing.T) {
	t.Run("stamps arrival time", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.MarkArrived())

		assert.Equal(t, dispatch.Arrived, a.Status())
		require.NotNil(t, a.ArrivedAt())
		assert.WithinDuration(t, time.Now().UTC(), *a.ArrivedAt(), time.Minute)
	})

	t.Run("second arrival is rejected", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.MarkArrived())
		require.ErrorIs(t, a.MarkArrived(), errs.ErrInvalidState)
	})
}

func TestAssignment_Start(t *testing.T) {
	t.Run("requires arrival first", func(t *testing.T) {
		a := newTestAssignment(t)
		require.ErrorIs(t, a.Start(), errs.ErrInvalidState)
	})

	t.Run("moves to in progress", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.MarkArrived())
		require.NoError(t, a.Start())
		assert.Equal(t, dispatch.InProgress, a.Status())
		assert.True(t, a.IsActive())
	})
}

func TestAssignment_Complete(t *testing.T) {
	t.Run("from any active sub-state", func(t *testing.T) {
		for _, prepare := range []func(*dispatch.Assignment){
			func(*dispatch.Assignment) {},
			func(a *dispatch.Assignment) { _ = a.MarkArrived() },
			func(a *dispatch.Assignment) { _ = a.MarkArrived(); _ = a.Start() },
		} {
			a := newTestAssignment(t)
			prepare(a)

			require.NoError(t, a.Complete())
			assert.Equal(t, dispatch.Completed, a.Status())
			assert.False(t, a.IsActive())
			require.NotNil(t, a.CompletedAt())
		}
	})

	t.Run("rejected when already terminal", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Complete())
		require.ErrorIs(t, a.Complete(), errs.ErrInvalidState)
	})
}

func TestAssignment_Cancel(t *testing.T) {
	t.Run("aborts an active assignment", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Cancel())
		assert.Equal(t, dispatch.Cancelled, a.Status())
		require.NotNil(t, a.CompletedAt())
	})

	t.Run("rejected when already terminal", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Cancel())
		require.ErrorIs(t, a.Cancel(), errs.ErrInvalidState)
	})
}

func TestRestoreAssignment(t *testing.T) {
	dispatchedAt := time.Now().UTC().Add(-30 * time.Minute)
	arrivedAt := time.Now().UTC().Add(-20 * time.Minute)

	a, err := dispatch.RestoreAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		dispatch.Arrived, dispatchedAt, &arrivedAt, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, dispatch.Arrived, a.Status())
	assert.Equal(t, dispatchedAt, a.DispatchedAt())
	require.NotNil(t, a.ArrivedAt())

	_, err = dispatch.RestoreAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		dispatch.Unknown, dispatchedAt, nil, nil,
	)
	require.Error(t, err)
}

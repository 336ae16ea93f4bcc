package vehicle_test

import (
	"testing"

	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/vehicle"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "AB-123-CD")
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("new vehicle is available", func(t *testing.T) {
		v := newTestVehicle(t)
		assert.Equal(t, vehicle.Available, v.Status())
		assert.True(t, v.IsAvailable())
		assert.Equal(t, "AB-123-CD", v.Plate())
	})

	t.Run("plate is required", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("company is required", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), kernel.UUID{}, "AB-123-CD")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var v vehicle.Vehicle
		require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})

	t.Run("constructed vehicle is valid", func(t *testing.T) {
		require.NoError(t, newTestVehicle(t).Validate())
	})
}

func TestVehicle_MarkOnDuty(t *testing.T) {
	t.Run("available vehicle goes on duty", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.MarkOnDuty())
		assert.Equal(t, vehicle.OnDuty, v.Status())
		assert.False(t, v.IsAvailable())
	})

	t.Run("double dispatch is rejected", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.MarkOnDuty())
		require.ErrorIs(t, v.MarkOnDuty(), errs.ErrInvalidState)
		assert.Equal(t, vehicle.OnDuty, v.Status())
	})
}

func TestVehicle_Release(t *testing.T) {
	t.Run("on duty vehicle becomes available", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.MarkOnDuty())
		require.NoError(t, v.Release())
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("releasing an available vehicle is rejected", func(t *testing.T) {
		v := newTestVehicle(t)
		require.ErrorIs(t, v.Release(), errs.ErrInvalidState)
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("restores on duty vehicle", func(t *testing.T) {
		id, companyID := kernel.NewUUID(), kernel.NewUUID()
		v, err := vehicle.RestoreVehicle(id, companyID, "XY-999-ZZ", vehicle.OnDuty)
		require.NoError(t, err)
		assert.Equal(t, vehicle.OnDuty, v.Status())
		assert.True(t, v.ID().IsEqual(id))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := vehicle.RestoreVehicle(kernel.NewUUID(), kernel.NewUUID(), "XY-999-ZZ", vehicle.Unknown)
		require.Error(t, err)
	})
}

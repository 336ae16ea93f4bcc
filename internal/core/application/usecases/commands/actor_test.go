package commands_test

import (
	"testing"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("requester needs no company", func(t *testing.T) {
		actor, err := commands.NewActor(kernel.NewUUID(), commands.RoleRequester, kernel.UUID{})
		require.NoError(t, err)
		require.Equal(t, commands.RoleRequester, actor.Role())
	})

	t.Run("manager requires a company", func(t *testing.T) {
		_, err := commands.NewActor(kernel.NewUUID(), commands.RoleManager, kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := commands.NewActor(kernel.NewUUID(), commands.RoleUnknown, kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor_Authorize(t *testing.T) {
	requesterID := kernel.NewUUID()
	companyID := kernel.NewUUID()
	aggregate := restoreOrderIn(t, order.Created, requesterID, companyID, nil)

	t.Run("requester on own order", func(t *testing.T) {
		actor := newRequesterActor(t, requesterID)
		require.NoError(t, actor.AuthorizeRequester(aggregate, "confirmPrice"))
	})

	t.Run("requester on someone else's order", func(t *testing.T) {
		actor := newRequesterActor(t, kernel.NewUUID())
		require.ErrorIs(t, actor.AuthorizeRequester(aggregate, "confirmPrice"), errs.ErrUnauthorized)
	})

	t.Run("manager of the provider organization", func(t *testing.T) {
		actor := newManagerActor(t, companyID)
		require.NoError(t, actor.AuthorizeManager(aggregate, "acceptOrder"))
	})

	t.Run("manager of another organization", func(t *testing.T) {
		actor := newManagerActor(t, kernel.NewUUID())
		require.ErrorIs(t, actor.AuthorizeManager(aggregate, "acceptOrder"), errs.ErrUnauthorized)
	})

	t.Run("roles are not interchangeable", func(t *testing.T) {
		manager := newManagerActor(t, companyID)
		require.ErrorIs(t, manager.AuthorizeRequester(aggregate, "confirmPrice"), errs.ErrUnauthorized)

		requester := newRequesterActor(t, requesterID)
		require.ErrorIs(t, requester.AuthorizeManager(aggregate, "acceptOrder"), errs.ErrUnauthorized)
	})
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/domain/model/dispatch"
	"rescue/internal/core/domain/model/invoice"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/core/domain/model/vehicle"
	"rescue/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllByCompany(ctx context.Context, companyID kernel.UUID) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *dispatch.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *dispatch.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*dispatch.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*dispatch.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispatch.Assignment), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountIssuedOn(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) GetAllPendingDueBefore(ctx context.Context, moment time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, moment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type MockConversationGateway struct{ mock.Mock }

func (m *MockConversationGateway) Open(ctx context.Context, request ports.ConversationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface in the package, so one
// mock type serves all handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newRequesterActor(t *testing.T, id kernel.UUID) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(id, commands.RoleRequester, kernel.UUID{})
	require.NoError(t, err)
	return actor
}

func newManagerActor(t *testing.T, companyID kernel.UUID) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(kernel.NewUUID(), commands.RoleManager, companyID)
	require.NoError(t, err)
	return actor
}

// restoreOrderIn builds an order in an arbitrary lifecycle state for
// handler tests.
func restoreOrderIn(t *testing.T, status order.Status, requesterID, companyID kernel.UUID, finalPrice *kernel.Price) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), requesterID, kernel.NewUUID(), companyID,
		status, nil, finalPrice, "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func newTestAssignmentFor(t *testing.T, orderID kernel.UUID) *dispatch.Assignment {
	t.Helper()
	a, err := dispatch.NewAssignment(kernel.NewUUID(), orderID, kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func mustPrice(t *testing.T, s string) kernel.Price {
	t.Helper()
	p, err := kernel.PriceFromString(s)
	require.NoError(t, err)
	return p
}

package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"rescue/internal/adapters/out/postgres/orderrepo"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/core/domain/model/order"
	"rescue/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	estimated := suite.mustPrice("150.00")
	id := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	serviceID := kernel.NewUUID()
	companyID := kernel.NewUUID()

	originalOrder, err := order.NewOrder(id, requesterID, serviceID, companyID, &estimated, "flat tire on the highway")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedOrder.ID())
	suite.Equal(requesterID, retrievedOrder.RequesterID())
	suite.Equal(serviceID, retrievedOrder.ServiceID())
	suite.Equal(companyID, retrievedOrder.CompanyID())
	suite.Equal(order.Created, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.EstimatedPrice())
	suite.True(estimated.IsEqual(*retrievedOrder.EstimatedPrice()))
	suite.Nil(retrievedOrder.FinalPrice())
	suite.Equal("flat tire on the highway", retrievedOrder.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgression() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AcceptedByCompany, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsFinalPriceAndNotes() {
	ctx := context.Background()

	testOrder := suite.restoreOrderWithStatus(order.InspectionDone)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	finalPrice := suite.mustPrice("249.90")
	suite.Require().NoError(testOrder.UpdatePrice(finalPrice, "needs a new alternator"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PriceUpdated, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.FinalPrice())
	suite.True(finalPrice.IsEqual(*retrievedOrder.FinalPrice()))
	suite.Equal("needs a new alternator", retrievedOrder.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrievedOrder, err := suite.repository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetForUpdate(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStatusStoredUnderCanonicalName() {
	ctx := context.Background()

	testOrder := suite.restoreOrderWithStatus(order.RescueVehicleDispatched)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	var status string
	err := suite.db.Raw("SELECT status FROM orders WHERE id = ?", testOrder.ID().Bytes()).Scan(&status).Error
	suite.Require().NoError(err)
	suite.Equal("RESCUE_VEHICLE_DISPATCHED", status)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	estimated := suite.mustPrice("100.00")
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		&estimated,
		"",
	)
	suite.Require().NoError(err)
	return testOrder
}

// restoreOrderWithStatus creates a test order already advanced to the given status.
func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderWithStatus(status order.Status) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		status,
		nil,
		nil,
		"",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) mustPrice(value string) kernel.Price {
	price, err := kernel.PriceFromString(value)
	suite.Require().NoError(err)
	return price
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

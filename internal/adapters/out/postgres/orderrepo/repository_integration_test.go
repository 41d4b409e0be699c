package orderrepo_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bakeshop/internal/adapters/out/postgres/orderrepo"
	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
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

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
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

	// Create valid order
	testOrder := suite.createTestOrder()

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order was persisted
	suite.assertOrderCount(1)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	// Create and add order
	originalOrder := suite.createTestOrder()

	// Set expectations for Add operation
	suite.tracker.On("TrackAggregate", originalOrder.ID().String(), originalOrder).Once()

	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	// Retrieve order
	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	// Verify order details survive the round trip
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("Priya Sharma", retrievedOrder.CustomerName())
	suite.Equal("+91 98450 12345", retrievedOrder.CustomerPhone())
	suite.Equal("12 MG Road, Hosur", retrievedOrder.Address())
	suite.Equal(order.HomeDelivery, retrievedOrder.Method())
	suite.Equal(order.New, retrievedOrder.Status())
	suite.Equal(order.PaymentPending, retrievedOrder.PaymentStatus())
	suite.Nil(retrievedOrder.Partner())
	suite.Nil(retrievedOrder.TransactionID())

	suite.Require().Len(retrievedOrder.Items(), 1)
	suite.Equal("Chocolate Truffle Cake", retrievedOrder.Items()[0].Name())
	suite.InDelta(450.0, retrievedOrder.Charges().Subtotal(), 1e-9)
	suite.InDelta(22.5, retrievedOrder.Charges().Tax(), 1e-9)
	suite.InDelta(80.0, retrievedOrder.Charges().Shipping(), 1e-9)
	suite.InDelta(552.5, retrievedOrder.Total(), 1e-9)

	// The "order placed" entry survives as JSONB
	suite.Require().Len(retrievedOrder.ActivityLog(), 1)
	suite.Equal("NEW", retrievedOrder.ActivityLog()[0].Status())

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent order
	nonExistentID, err := kernel.OrderIDFromString("ORD-9999")
	suite.Require().NoError(err)
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	// Verify error and result
	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_OrderLifecycle() {
	ctx := context.Background()

	// Create and persist a fresh order
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Twice()
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Accept the order, record payment and persist the change
	suite.Require().NoError(testOrder.ChangeStatus(order.Accepted, nil))
	suite.Require().NoError(testOrder.MarkPaid(kernel.NewUUID()))
	err = suite.repository.Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Retrieve and verify the updated state
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrievedOrder.Status())
	suite.Equal(order.PaymentPaid, retrievedOrder.PaymentStatus())
	suite.NotNil(retrievedOrder.TransactionID())

	// Placed, accepted and payment entries
	suite.Len(retrievedOrder.ActivityLog(), 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PartnerAssignment() {
	ctx := context.Background()

	// Persist an order waiting for dispatch
	testOrder := suite.createTestOrderWithStatus(order.Ready, nil)
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Twice()
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Assign a partner and persist
	partnerID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignPartner(partnerID))
	err = suite.repository.Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify the partner reference survives
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Partner())
	suite.True(partnerID.IsEqual(*retrievedOrder.Partner()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	// Create order that doesn't exist in database
	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail

	// Try to update non-existent order
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllReadyForDispatch_ReturnsOnlyUnassignedReadyDeliveries() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(5)

	// A backlog candidate: Ready, home delivery, no partner
	waiting := suite.createTestOrderWithStatus(order.Ready, nil)
	suite.Require().NoError(suite.repository.Add(ctx, waiting))

	// Ready but already assigned
	partnerID := kernel.NewUUID()
	assigned := suite.createTestOrderWithStatus(order.Ready, &partnerID)
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	// Not yet ready
	cooking := suite.createTestOrderWithStatus(order.Preparing, nil)
	suite.Require().NoError(suite.repository.Add(ctx, cooking))

	// Terminal
	done := suite.createTestOrderWithStatus(order.Delivered, &partnerID)
	suite.Require().NoError(suite.repository.Add(ctx, done))

	// Ready pickup orders never need a partner
	pickup := suite.createTestPickupOrderWithStatus(order.Ready)
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	// Only the waiting home delivery qualifies
	pending, err := suite.repository.GetAllReadyForDispatch(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(waiting.ID(), pending[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllReadyForDispatch_EmptyBacklog_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderWithStatus(order.Preparing, nil)))

	pending, err := suite.repository.GetAllReadyForDispatch(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(2)

	older := suite.createTestOrderCreatedAt(time.Now().UTC().Add(-time.Hour))
	newer := suite.createTestOrderCreatedAt(time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	allOrders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(allOrders, 2)
	suite.Equal(newer.ID(), allOrders[0].ID())
	suite.Equal(older.ID(), allOrders[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with empty order id",
			operation: func() error {
				invalidID := kernel.OrderID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID, err := kernel.OrderIDFromString("ORD-404404")
				suite.Require().NoError(err)
				_, err = suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				nonExistentOrder := suite.createTestOrder()
				return suite.repository.Update(context.Background(), nonExistentOrder)
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	// Create initial order
	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID().String(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// orderSeq hands out distinct order numbers within the suite run.
var orderSeq atomic.Int64

func (suite *OrderRepositoryIntegrationTestSuite) nextOrderID() kernel.OrderID {
	id, err := kernel.OrderIDFromString(fmt.Sprintf("ORD-%d", orderSeq.Add(1)))
	suite.Require().NoError(err)
	return id
}

// createTestOrder creates a basic home delivery order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItemLine("1", "Chocolate Truffle Cake", 450, 1)
	suite.Require().NoError(err)
	charges, err := order.NewCharges(450, 22.5, 80)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(suite.nextOrderID(), "Priya Sharma", "+91 98450 12345",
		"12 MG Road, Hosur", []order.ItemLine{item}, order.HomeDelivery, charges)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus restores a home delivery order at the given
// lifecycle position with an optional assigned partner.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, partnerID *kernel.UUID,
) *order.Order {
	item, err := order.NewItemLine("1", "Chocolate Truffle Cake", 450, 1)
	suite.Require().NoError(err)
	charges, err := order.NewCharges(450, 22.5, 80)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		suite.nextOrderID(),
		"Priya Sharma",
		"+91 98450 12345",
		"12 MG Road, Hosur",
		[]order.ItemLine{item},
		order.HomeDelivery,
		charges,
		status,
		order.PaymentPending,
		nil,
		partnerID,
		time.Now().UTC(),
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestPickupOrderWithStatus restores a pickup order at the given lifecycle position.
func (suite *OrderRepositoryIntegrationTestSuite) createTestPickupOrderWithStatus(
	status order.Status,
) *order.Order {
	item, err := order.NewItemLine("2", "Masala Bun", 40, 2)
	suite.Require().NoError(err)
	charges, err := order.NewCharges(80, 4, 0)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		suite.nextOrderID(),
		"Arjun Rao",
		"+91 99860 54321",
		"",
		[]order.ItemLine{item},
		order.Pickup,
		charges,
		status,
		order.PaymentPending,
		nil,
		nil,
		time.Now().UTC(),
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderCreatedAt restores an order placed at the given time.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderCreatedAt(createdAt time.Time) *order.Order {
	item, err := order.NewItemLine("1", "Chocolate Truffle Cake", 450, 1)
	suite.Require().NoError(err)
	charges, err := order.NewCharges(450, 22.5, 80)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		suite.nextOrderID(),
		"Priya Sharma",
		"+91 98450 12345",
		"12 MG Road, Hosur",
		[]order.ItemLine{item},
		order.HomeDelivery,
		charges,
		order.New,
		order.PaymentPending,
		nil,
		nil,
		createdAt,
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
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

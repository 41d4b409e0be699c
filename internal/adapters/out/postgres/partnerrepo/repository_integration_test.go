package partnerrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"bakeshop/internal/adapters/out/postgres/partnerrepo"
	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/partner"
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

// PartnerRepositoryIntegrationTestSuite provides integration tests for PartnerRepository
// using PostgreSQL containers to verify database persistence behavior.
type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partnerrepo.GormPartnerRepository
	tracker    *MockAggregateTracker
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&partnerrepo.PartnerDTO{}))
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE partners").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = partnerrepo.NewGormPartnerRepository(suite.db, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_ValidPartner_Success() {
	ctx := context.Background()

	// Create valid partner
	testPartner := suite.createTestPartner("Ravi Kumar")

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testPartner.ID().String(), testPartner).Once()

	// Add partner to repository
	err := suite.repository.Add(ctx, testPartner)
	suite.Require().NoError(err)

	// Verify partner was persisted
	suite.assertPartnerCount(1)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_ExistingPartner_ReturnsPartner() {
	ctx := context.Background()

	// Create and add partner
	originalPartner := suite.createTestPartner("Ravi Kumar")

	// Set expectations for Add operation
	suite.tracker.On("TrackAggregate", originalPartner.ID().String(), originalPartner).Once()

	err := suite.repository.Add(ctx, originalPartner)
	suite.Require().NoError(err)

	// Retrieve partner
	retrievedPartner, err := suite.repository.Get(ctx, originalPartner.ID())
	suite.Require().NoError(err)

	// Verify partner details survive the round trip
	suite.True(originalPartner.ID().IsEqual(retrievedPartner.ID()))
	suite.Equal("Ravi Kumar", retrievedPartner.Name())
	suite.Equal("+91 99860 54321", retrievedPartner.Phone())
	suite.Equal(partner.Offline, retrievedPartner.Availability())
	suite.InDelta(4.5, retrievedPartner.PerformanceScore(), 1e-9)
	suite.Equal(0, retrievedPartner.OrderCount())

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_NonExistentPartner_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent partner
	nonExistentID := kernel.NewUUID()
	retrievedPartner, err := suite.repository.Get(ctx, nonExistentID)

	// Verify error and result
	suite.Nil(retrievedPartner)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_CarriedOrdersRoundTrip() {
	ctx := context.Background()

	// Persist an online partner
	testPartner := suite.createTestPartner("Ravi Kumar")
	testPartner.ToggleAvailability()
	suite.tracker.On("TrackAggregate", testPartner.ID().String(), testPartner).Times(3)
	err := suite.repository.Add(ctx, testPartner)
	suite.Require().NoError(err)

	// Partner takes two orders
	first, err := kernel.OrderIDFromString("ORD-1")
	suite.Require().NoError(err)
	second, err := kernel.OrderIDFromString("ORD-2")
	suite.Require().NoError(err)
	suite.Require().NoError(testPartner.TakeOrder(first))
	suite.Require().NoError(testPartner.TakeOrder(second))
	err = suite.repository.Update(ctx, testPartner)
	suite.Require().NoError(err)

	// The text[] column carries both order ids
	retrievedPartner, err := suite.repository.Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(partner.Online, retrievedPartner.Availability())
	suite.Require().Equal(2, retrievedPartner.OrderCount())
	suite.True(retrievedPartner.CurrentOrders()[0].IsEqual(first))
	suite.True(retrievedPartner.CurrentOrders()[1].IsEqual(second))

	// Releasing everything empties the column again
	suite.Require().NoError(testPartner.ReleaseOrder(first))
	suite.Require().NoError(testPartner.ReleaseOrder(second))
	err = suite.repository.Update(ctx, testPartner)
	suite.Require().NoError(err)

	retrievedPartner, err = suite.repository.Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrievedPartner.OrderCount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_AvailabilityToggleRoundTrip() {
	ctx := context.Background()

	testPartner := suite.createTestPartner("Ravi Kumar")
	testPartner.ToggleAvailability()
	suite.tracker.On("TrackAggregate", testPartner.ID().String(), testPartner).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testPartner))

	// Going offline must be written even though Offline is a plain int column
	testPartner.ToggleAvailability()
	suite.Require().NoError(suite.repository.Update(ctx, testPartner))

	retrievedPartner, err := suite.repository.Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(partner.Offline, retrievedPartner.Availability())
	suite.False(retrievedPartner.IsOnline())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_NonExistentPartner_ReturnsError() {
	ctx := context.Background()

	// Create partner that doesn't exist in database
	nonExistentPartner := suite.createTestPartner("Ravi Kumar")

	// No expectations on tracker since operation should fail

	// Try to update non-existent partner
	err := suite.repository.Update(ctx, nonExistentPartner)
	suite.Require().Error(err)

	// Assert no unexpected calls
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAll_ReturnsPartnersSortedByName() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("Suresh Babu")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("Anil Menon")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("Ravi Kumar")))

	allPartners, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(allPartners, 3)
	suite.Equal("Anil Menon", allPartners[0].Name())
	suite.Equal("Ravi Kumar", allPartners[1].Name())
	suite.Equal("Suresh Babu", allPartners[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllOnline_ReturnsOnlyOnlinePartners() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)

	online := suite.createTestPartner("Ravi Kumar")
	online.ToggleAvailability()
	suite.Require().NoError(suite.repository.Add(ctx, online))

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("Anil Menon")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("Suresh Babu")))

	onlinePartners, err := suite.repository.GetAllOnline(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(onlinePartners, 1)
	suite.True(online.ID().IsEqual(onlinePartners[0].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllOnline_NoOnlinePartners_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("Anil Menon")))

	onlinePartners, err := suite.repository.GetAllOnline(ctx)
	suite.Require().NoError(err)
	suite.Empty(onlinePartners)

	suite.tracker.AssertExpectations(suite.T())
}

// TestPartnerRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *PartnerRepositoryIntegrationTestSuite) TestPartnerRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent partner",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent partner",
			operation: func() error {
				nonExistentPartner := suite.createTestPartner("Ravi Kumar")
				return suite.repository.Update(context.Background(), nonExistentPartner)
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

// createTestPartner creates a basic offline partner with default values.
func (suite *PartnerRepositoryIntegrationTestSuite) createTestPartner(name string) *partner.DeliveryPartner {
	testPartner, err := partner.NewDeliveryPartner(kernel.NewUUID(), name, "+91 99860 54321", 4.5)
	suite.Require().NoError(err)
	return testPartner
}

// assertPartnerCount verifies the number of partners in the database.
func (suite *PartnerRepositoryIntegrationTestSuite) assertPartnerCount(expected int) {
	var count int64
	err := suite.db.Model(&partnerrepo.PartnerDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}

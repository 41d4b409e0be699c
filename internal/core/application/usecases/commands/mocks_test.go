package commands_test

import (
	"context"
	"testing"

	"bakeshop/internal/core/application/usecases/commands"
	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/core/domain/model/partner"
	"bakeshop/internal/core/domain/model/pricing"
	"bakeshop/internal/core/ports"

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

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllReadyForDispatch(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.DeliveryPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.DeliveryPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

func (m *MockPartnerRepository) GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.DeliveryPartner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllOnline(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.DeliveryPartner), args.Error(1)
}

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

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ MockUoW }

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoW struct{ MockUoW }

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

// Shared test fixtures.

func testStorePoint(t *testing.T) kernel.GeoPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(12.7786, 77.7629)
	require.NoError(t, err)
	return point
}

func testSettings(t *testing.T) pricing.DeliverySettings {
	t.Helper()

	near, err := pricing.NewDeliveryTier(0, 3, 50)
	require.NoError(t, err)
	mid, err := pricing.NewDeliveryTier(3, 7, 80)
	require.NoError(t, err)
	far, err := pricing.NewDeliveryTier(7, 10, 120)
	require.NoError(t, err)

	settings, err := pricing.NewDeliverySettings(
		60, 100, 50000, []pricing.DeliveryTier{near, mid, far})
	require.NoError(t, err)
	return settings
}

func testItems(t *testing.T) []order.ItemLine {
	t.Helper()

	line, err := order.NewItemLine("1", "Chocolate Truffle Cake", 450, 1)
	require.NoError(t, err)
	return []order.ItemLine{line}
}

func testHomeOrder(t *testing.T) *order.Order {
	t.Helper()

	charges, err := order.NewCharges(450, 22.5, 80)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewOrderID(), "Priya Sharma", "+91-9876512345",
		"12 MG Road, Hosur", testItems(t), order.HomeDelivery, charges)
	require.NoError(t, err)
	return o
}

func testOnlinePartner(t *testing.T) *partner.DeliveryPartner {
	t.Helper()

	p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi Kumar", "+91-9876500001", 4.5)
	require.NoError(t, err)
	p.ToggleAvailability()
	return p
}

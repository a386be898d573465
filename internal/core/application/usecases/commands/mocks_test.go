package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/driver"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/core/ports"
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

func (m *MockOrderRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
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

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

// Shared fixtures.

var testNow = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)

func testRoute(t *testing.T) order.Route {
	t.Helper()

	pickup, err := kernel.NewAddress("Kimathi Street 12, Nairobi CBD", nil)
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("Ngong Road 77, Kilimani", nil)
	require.NoError(t, err)
	route, err := order.NewRoute(pickup, delivery)
	require.NoError(t, err)
	return route
}

func testPackage(t *testing.T) order.Package {
	t.Helper()

	pkg, err := order.NewPackage(order.CategoryElectronics, "laptop in original box", true, true)
	require.NoError(t, err)
	return pkg
}

func testRecipient(t *testing.T) order.Recipient {
	t.Helper()

	phone, err := kernel.NewPhone("+254712345678")
	require.NoError(t, err)
	recipient, err := order.NewRecipient("Wanjiku Kamau", phone)
	require.NoError(t, err)
	return recipient
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewTrackingCode(),
		kernel.NewUUID(),
		testRoute(t),
		testPackage(t),
		testRecipient(t),
		"call on arrival",
		order.PaymentMethodMpesa,
		order.PaymentTermPayNow,
		296,
		testNow,
	)
	require.NoError(t, err)
	return o
}

func testDriver(t *testing.T) *driver.Driver {
	t.Helper()

	phone, err := kernel.NewPhone("0722000111")
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "Otieno Odhiambo", phone)
	require.NoError(t, err)
	return d
}

func assignedOrder(t *testing.T, d *driver.Driver) *order.Order {
	t.Helper()

	o := testOrder(t)
	snapshot, err := d.Snapshot()
	require.NoError(t, err)
	require.NoError(t, o.Assign(d.ID(), snapshot, testNow.Add(time.Minute)))
	require.NoError(t, d.MarkBusy())
	return o
}

func deliveredOrder(t *testing.T, d *driver.Driver) *order.Order {
	t.Helper()

	o := assignedOrder(t, d)
	now := testNow.Add(2 * time.Minute)
	for _, next := range []order.Status{order.StatusPickedUp, order.StatusInTransit, order.StatusDelivered} {
		require.NoError(t, o.Advance(next, now))
		now = now.Add(time.Minute)
	}
	return o
}

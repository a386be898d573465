package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
)

type MockTrackedOrderRepository struct{ mock.Mock }

func (m *MockTrackedOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTrackedOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTrackedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTrackedOrderRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTrackedOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTrackedOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

var testCreatedAt = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	return testOrderWithCreatedAt(t, testCreatedAt)
}

func testOrderWithCreatedAt(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()

	pickup, err := kernel.NewAddress("Kimathi Street 12, Nairobi CBD", nil)
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("Ngong Road 77, Kilimani", nil)
	require.NoError(t, err)
	route, err := order.NewRoute(pickup, delivery)
	require.NoError(t, err)

	pkg, err := order.NewPackage(order.CategoryClothing, "two suits", false, false)
	require.NoError(t, err)

	phone, err := kernel.NewPhone("+254712345678")
	require.NoError(t, err)
	recipient, err := order.NewRecipient("Wanjiku Kamau", phone)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewTrackingCode(),
		kernel.NewUUID(),
		route,
		pkg,
		recipient,
		"",
		order.PaymentMethodCard,
		order.PaymentTermPayNow,
		180,
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestGetTrackedOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	trackedOrder := testOrder(t)
	query, err := queries.NewGetTrackedOrderQuery(trackedOrder.TrackingCode())
	require.NoError(t, err)

	orderRepo := new(MockTrackedOrderRepository)
	orderRepo.On("GetByTrackingCode", ctx, trackedOrder.TrackingCode()).Return(trackedOrder, nil).Once()

	handler := queries.NewGetTrackedOrderQueryHandler(orderRepo)
	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, response.OrderID.IsEqual(trackedOrder.ID()))
	assert.Equal(t, trackedOrder.TrackingCode(), response.TrackingCode)
	assert.Equal(t, order.StatusPending, response.Status)
	assert.Equal(t, 180, response.Price)
	assert.Nil(t, response.Driver)
	require.Len(t, response.Timeline, 5)
	assert.True(t, response.Timeline[0].Completed)
	assert.True(t, response.Timeline[4].Estimated)
	orderRepo.AssertExpectations(t)
}

func TestGetTrackedOrderQueryHandler_Handle_CancelledOrderTimeline(t *testing.T) {
	ctx := t.Context()
	trackedOrder := testOrder(t)
	require.NoError(t, trackedOrder.Cancel("customer changed plans", testCreatedAt.Add(7*time.Minute)))
	query, err := queries.NewGetTrackedOrderQuery(trackedOrder.TrackingCode())
	require.NoError(t, err)

	orderRepo := new(MockTrackedOrderRepository)
	orderRepo.On("GetByTrackingCode", ctx, trackedOrder.TrackingCode()).Return(trackedOrder, nil).Once()

	handler := queries.NewGetTrackedOrderQueryHandler(orderRepo)
	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, response.Status)
	require.Len(t, response.Timeline, 6)
	assert.Equal(t, "Cancelled: customer changed plans", response.Timeline[5].Description)
}

func TestGetTrackedOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewTrackingCode()
	query, err := queries.NewGetTrackedOrderQuery(code)
	require.NoError(t, err)

	orderRepo := new(MockTrackedOrderRepository)
	orderRepo.On("GetByTrackingCode", ctx, code).
		Return(nil, errs.NewObjectNotFoundError("trackingCode", code.String())).Once()

	handler := queries.NewGetTrackedOrderQueryHandler(orderRepo)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetTrackedOrderQuery_ZeroValueIsNotValid(t *testing.T) {
	var query queries.GetTrackedOrderQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetTrackedOrderQueryIsNotConstructed)
}

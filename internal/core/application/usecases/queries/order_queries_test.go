package queries_test

import (
	"testing"
	"time"

	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	readers := newReaders()
	readers.orders.On("Get", ctx, orderID).Return(sampleOrder(t), nil).Once()

	q, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	got, err := queries.NewGetOrderQueryHandler(readers).Handle(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, "ORD_00000001", got.ID.String())
	assert.Equal(t, "2001.00", got.TotalAmount.String())
	assert.Equal(t, order.Pending, got.Status)
	assert.Equal(t, "dock 3", got.Notes)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Bolt kit", got.Items[1].Product)
	assert.Equal(t, "1.00", got.Items[1].Subtotal.String())
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	readers := newReaders()
	readers.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	q, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(readers).Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewListOrdersQuery_FilterPrecedence(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	approved := order.Approved
	page := ports.NewPage(0, 10)

	tests := []struct {
		name     string
		from, to *time.Time
		status   *order.Status
		want     queries.OrderFilter
	}{
		{"range beats status", &from, &to, &approved, queries.FilterDateRange},
		{"status alone", nil, nil, &approved, queries.FilterStatus},
		{"half range is ignored", &from, nil, &approved, queries.FilterStatus},
		{"nothing", nil, nil, nil, queries.FilterNone},
		{"half range without status", nil, &to, nil, queries.FilterNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListOrdersQuery(tt.from, tt.to, tt.status, page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Filter())
		})
	}
}

func TestNewListOrdersQuery_Invalid(t *testing.T) {
	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := queries.NewListOrdersQuery(&from, &to, nil, ports.NewPage(0, 10))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	unknown := order.Unknown
	_, err = queries.NewListOrdersQuery(nil, nil, &unknown, ports.NewPage(0, 10))
	require.Error(t, err)
}

func TestListOrdersQueryHandler_Handle_RoutesByFilter(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	shipped := order.Shipped
	page := ports.NewPage(1, 2)

	t.Run("date range", func(t *testing.T) {
		ctx := t.Context()
		readers := newReaders()
		readers.orders.On("GetAllCreatedBetween", ctx, from, to, page).Return([]*order.Order{sampleOrder(t)}, int64(3), nil).Once()

		q, err := queries.NewListOrdersQuery(&from, &to, &shipped, page)
		require.NoError(t, err)

		got, err := queries.NewListOrdersQueryHandler(readers).Handle(ctx, q)
		require.NoError(t, err)

		assert.Len(t, got.Content, 1)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 2, got.Size)
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, 2, got.TotalPages)
		readers.orders.AssertExpectations(t)
	})

	t.Run("status", func(t *testing.T) {
		ctx := t.Context()
		readers := newReaders()
		readers.orders.On("GetAllByStatus", ctx, shipped, page).Return([]*order.Order{}, int64(0), nil).Once()

		q, err := queries.NewListOrdersQuery(nil, nil, &shipped, page)
		require.NoError(t, err)

		got, err := queries.NewListOrdersQueryHandler(readers).Handle(ctx, q)
		require.NoError(t, err)

		assert.Empty(t, got.Content)
		assert.Equal(t, 0, got.TotalPages)
		readers.orders.AssertExpectations(t)
	})

	t.Run("all", func(t *testing.T) {
		ctx := t.Context()
		readers := newReaders()
		readers.orders.On("GetAll", ctx, page).Return([]*order.Order{sampleOrder(t)}, int64(1), nil).Once()

		q, err := queries.NewListOrdersQuery(nil, nil, nil, page)
		require.NoError(t, err)

		_, err = queries.NewListOrdersQueryHandler(readers).Handle(ctx, q)
		require.NoError(t, err)
		readers.orders.AssertExpectations(t)
	})

	t.Run("not constructed", func(t *testing.T) {
		_, err := queries.NewListOrdersQueryHandler(newReaders()).Handle(t.Context(), queries.ListOrdersQuery{})
		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}

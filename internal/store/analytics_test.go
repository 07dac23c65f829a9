package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSalesTrend(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	from := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders").
		WithArgs("completed", from).
		WillReturnRows(sqlmock.NewRows(
			[]string{"date", "orders_count", "total_sales", "average_order_value"}).
			AddRow(day2, 1, "200.00", "200.000000").
			AddRow(day1, 2, "150.00", "75.000000"))

	trend, err := ms.GetSalesTrend(ctx, from)
	require.NoError(t, err)
	require.Len(t, trend, 2)

	// most recent day first
	assert.Equal(t, day2, trend[0].Date)
	assert.Equal(t, 1, trend[0].OrdersCount)
	assert.True(t, trend[0].TotalSales.Equal(decimal.NewFromInt(200)))
	assert.True(t, trend[0].AverageOrderValue.Equal(decimal.NewFromInt(200)))

	assert.Equal(t, day1, trend[1].Date)
	assert.Equal(t, 2, trend[1].OrdersCount)
	assert.True(t, trend[1].TotalSales.Equal(decimal.NewFromInt(150)))
	assert.True(t, trend[1].AverageOrderValue.Equal(decimal.NewFromInt(75)))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSalesTrendEmpty(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM orders").
		WillReturnRows(sqlmock.NewRows(
			[]string{"date", "orders_count", "total_sales", "average_order_value"}))

	trend, err := ms.GetSalesTrend(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, trend)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesTotal(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders").
		WithArgs("completed", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("350.00"))

	total, err := ms.SalesTotal(ctx, from, to)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(350)))

	// zero upper bound leaves the window open-ended, only two params bound
	mock.ExpectQuery("FROM orders").
		WithArgs("completed", from).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("0"))

	total, err = ms.SalesTotal(ctx, from, time.Time{})
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInventoryStatus(t *testing.T) {
	ms, mock := newMockStore(t)

	// stocks [0, 3, 5, 10] with threshold 5
	mock.ExpectQuery("FROM products").
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(
			[]string{"total_products", "out_of_stock", "low_stock", "in_stock"}).
			AddRow(4, 1, 2, 1))

	is, err := ms.GetInventoryStatus(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 4, is.TotalProducts)
	assert.Equal(t, 1, is.OutOfStock)
	assert.Equal(t, 2, is.LowStock)
	assert.Equal(t, 1, is.InStock)
	assert.Equal(t, is.TotalProducts, is.OutOfStock+is.LowStock+is.InStock)

	require.NoError(t, mock.ExpectationsWereMet())
}

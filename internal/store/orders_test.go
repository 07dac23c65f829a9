package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByStatus(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count", "total_amount"}).
			AddRow("completed", 3, "450.00").
			AddRow("pending", 1, "99.90"))

	breakdown, err := ms.GetOrdersByStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, breakdown, 2)

	assert.Equal(t, entity.OrderStatusCompleted, breakdown[0].Status)
	assert.Equal(t, 3, breakdown[0].Count)
	assert.True(t, breakdown[0].TotalAmount.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, entity.OrderStatusPending, breakdown[1].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentOrders(t *testing.T) {
	ms, mock := newMockStore(t)

	t2 := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "address_id", "total_amount", "status", "payment_status", "created_at"}).
			AddRow(12, 2, nil, "200.00", "completed", "paid", t2).
			AddRow(11, 1, 5, "150.00", "pending", "unpaid", t1))

	mock.ExpectQuery("FROM order_items").
		WithArgs(12, 11).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "order_id", "product_id", "quantity", "price", "product_name", "product_price"}).
			AddRow(101, 12, 7, 2, "100.00", "Keyboard", "100.00").
			AddRow(102, 11, 8, 1, "150.00", "Monitor", "150.00"))

	mock.ExpectQuery("FROM users").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "Alice", "alice@example.com").
			AddRow(2, "Bob", "bob@example.com"))

	orders, err := ms.GetRecentOrders(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, 12, orders[0].Order.ID)
	assert.Equal(t, "Bob", orders[0].User.Name)
	require.Len(t, orders[0].OrderItems, 1)
	assert.Equal(t, 7, orders[0].OrderItems[0].Product.ID)
	assert.Equal(t, "Keyboard", orders[0].OrderItems[0].Product.Name)
	assert.Equal(t, 2, orders[0].OrderItems[0].OrderItem.Quantity)

	assert.Equal(t, 11, orders[1].Order.ID)
	assert.Equal(t, "Alice", orders[1].User.Name)
	require.Len(t, orders[1].OrderItems, 1)
	assert.Equal(t, "Monitor", orders[1].OrderItems[0].Product.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentOrdersEmpty(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM orders").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "address_id", "total_amount", "status", "payment_status", "created_at"}))

	orders, err := ms.GetRecentOrders(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM orders").
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := ms.CountByStatus(context.Background(), entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalRevenue(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM orders").
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1234.56"))

	total, err := ms.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("1234.56")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAverageOrderValue(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM orders").
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow("0"))

	avg, err := ms.AverageOrderValue(context.Background())
	require.NoError(t, err)
	assert.True(t, avg.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

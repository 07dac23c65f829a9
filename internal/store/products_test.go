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

var productTestColumns = []string{
	"id", "name", "price", "category_id", "stock", "status",
	"sales_count", "view_count", "average_rating", "reviews_count", "created_at",
}

func TestGetTopProducts(t *testing.T) {
	ms, mock := newMockStore(t)

	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	cols := append(append([]string{}, productTestColumns...),
		"category_name", "order_items_count", "avg_review_rating")

	mock.ExpectQuery("FROM products p").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "Keyboard", "49.90", 2, 12, "active", 30, 200, "4.50", 5, created, "Peripherals", 8, "4.200000").
			AddRow(9, "Mouse", "19.90", 2, 40, "active", 20, 150, "0.00", 0, created, "Peripherals", 3, nil))

	top, err := ms.GetTopProducts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, 7, top[0].Product.ID)
	assert.Equal(t, 2, top[0].Category.ID)
	assert.Equal(t, "Peripherals", top[0].Category.Name)
	assert.Equal(t, 8, top[0].OrderItemsCount)
	require.True(t, top[0].AvgReviewRating.Valid)
	assert.True(t, top[0].AvgReviewRating.Decimal.Equal(decimal.RequireFromString("4.2")))

	// a product with no reviews carries a null average, not zero
	assert.False(t, top[1].AvgReviewRating.Valid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryPerformance(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM products p").
		WillReturnRows(sqlmock.NewRows([]string{"name", "products_count", "total_sales"}).
			AddRow("Peripherals", 5, 120).
			AddRow("Audio", 2, 30))

	perf, err := ms.GetCategoryPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, perf, 2)

	assert.Equal(t, "Peripherals", perf[0].Name)
	assert.Equal(t, 5, perf[0].ProductsCount)
	assert.Equal(t, 120, perf[0].TotalSales)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopPerformers(t *testing.T) {
	ms, mock := newMockStore(t)

	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	cols := append(append([]string{}, productTestColumns...), "category_name", "revenue")

	mock.ExpectQuery("FROM products p").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "Keyboard", "49.90", 2, 12, "active", 30, 200, "4.50", 5, created, "Peripherals", "1497.00"))

	performers, err := ms.GetTopPerformers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, performers, 1)

	assert.Equal(t, "Keyboard", performers[0].Product.Name)
	assert.True(t, performers[0].Revenue.Equal(decimal.RequireFromString("1497")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductScopes(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY sales_count").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(productTestColumns).
			AddRow(7, "Keyboard", "49.90", 2, 12, "active", 30, 200, "4.50", 5, created))

	selling, err := ms.TopSelling(ctx, 5)
	require.NoError(t, err)
	require.Len(t, selling, 1)
	assert.Equal(t, 30, selling[0].SalesCount)

	mock.ExpectQuery("WHERE reviews_count > 0").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(productTestColumns).
			AddRow(7, "Keyboard", "49.90", 2, 12, "active", 30, 200, "4.50", 5, created))

	rated, err := ms.TopRated(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.True(t, rated[0].AverageRating.Equal(decimal.RequireFromString("4.5")))

	mock.ExpectQuery("ORDER BY view_count").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(productTestColumns).
			AddRow(7, "Keyboard", "49.90", 2, 12, "active", 30, 200, "4.50", 5, created))

	viewed, err := ms.MostViewed(ctx, 5)
	require.NoError(t, err)
	require.Len(t, viewed, 1)
	assert.Equal(t, 200, viewed[0].ViewCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCount(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM products").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := ms.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeRatingAggregate(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM reviews").
		WithArgs(7, "approved").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "cnt"}).AddRow("4.333333", 3))
	mock.ExpectExec("UPDATE products").
		WithArgs(decimal.RequireFromString("4.33"), 3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	agg, err := ms.RecomputeRatingAggregate(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, agg.AverageRating.Equal(decimal.RequireFromString("4.33")))
	assert.Equal(t, 3, agg.ReviewsCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeRatingAggregateNoReviews(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM reviews").
		WithArgs(9, "approved").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "cnt"}).AddRow(nil, 0))
	mock.ExpectExec("UPDATE products").
		WithArgs(decimal.Zero, 0, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	agg, err := ms.RecomputeRatingAggregate(context.Background(), 9)
	require.NoError(t, err)

	assert.True(t, agg.AverageRating.IsZero())
	assert.Equal(t, 0, agg.ReviewsCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

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

func TestGetRatingDistribution(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM reviews").
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(5, 2).
			AddRow(3, 1))

	dist, err := ms.GetRatingDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, dist, 2)

	// highest rating first, absent ratings produce no bucket
	assert.Equal(t, entity.RatingBucket{Rating: 5, Count: 2}, dist[0])
	assert.Equal(t, entity.RatingBucket{Rating: 3, Count: 1}, dist[1])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentReviews(t *testing.T) {
	ms, mock := newMockStore(t)

	created := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM reviews r").
		WithArgs("approved", 10).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "product_id", "order_item_id", "rating",
				"title", "comment", "status", "created_at",
				"user_name", "user_email", "product_name", "product_price"}).
			AddRow(3, 1, 7, nil, 5, "Great", "Would buy again", "approved", created,
				"Alice", "alice@example.com", "Keyboard", "49.90"))

	reviews, err := ms.GetRecentReviews(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	r := reviews[0]
	assert.Equal(t, 3, r.Review.ID)
	assert.Equal(t, 5, r.Review.Rating)
	assert.Equal(t, entity.ReviewStatusApproved, r.Review.Status)
	assert.False(t, r.Review.OrderItemID.Valid)
	assert.Equal(t, "Alice", r.User.Name)
	assert.Equal(t, "alice@example.com", r.User.Email)
	assert.Equal(t, 7, r.Product.ID)
	assert.Equal(t, "Keyboard", r.Product.Name)
	assert.True(t, r.Product.Price.Equal(decimal.RequireFromString("49.90")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAverageRating(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	// ratings [5, 5, 3] average to 4.33 after rounding
	mock.ExpectQuery("FROM reviews").
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow("4.333333"))

	avg, err := ms.GetAverageRating(ctx)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("4.33")))

	// no approved reviews at all
	mock.ExpectQuery("FROM reviews").
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	avg, err = ms.GetAverageRating(ctx)
	require.NoError(t, err)
	assert.True(t, avg.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountApproved(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery("FROM reviews").
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

	count, err := ms.CountApproved(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, count)

	require.NoError(t, mock.ExpectationsWereMet())
}

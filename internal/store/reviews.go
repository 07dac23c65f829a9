package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/shopspring/decimal"
)

type reviewsStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Reviews() dependency.Reviews {
	return &reviewsStore{MYSQLStore: ms}
}

// GetRatingDistribution counts approved reviews per rating value, highest
// rating first. Ratings with no occurrences produce no row.
func (ms *MYSQLStore) GetRatingDistribution(ctx context.Context) ([]entity.RatingBucket, error) {
	query := `
	SELECT rating, COUNT(*) AS count
	FROM reviews
	WHERE status = :status
	GROUP BY rating
	ORDER BY rating DESC`

	dist, err := QueryListNamed[entity.RatingBucket](ctx, ms.DB(), query, map[string]any{
		"status": entity.ReviewStatusApproved.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("can't get rating distribution: %w", err)
	}
	return dist, nil
}

type reviewFullRow struct {
	ID           int                     `db:"id"`
	UserID       int                     `db:"user_id"`
	ProductID    int                     `db:"product_id"`
	OrderItemID  sql.NullInt32           `db:"order_item_id"`
	Rating       int                     `db:"rating"`
	Title        string                  `db:"title"`
	Comment      string                  `db:"comment"`
	Status       entity.ReviewStatusName `db:"status"`
	CreatedAt    time.Time               `db:"created_at"`
	UserName     string                  `db:"user_name"`
	UserEmail    string                  `db:"user_email"`
	ProductName  string                  `db:"product_name"`
	ProductPrice decimal.Decimal         `db:"product_price"`
}

// GetRecentReviews returns the limit most recent approved reviews, each
// expanded with its reviewer and product. Ties on created_at are broken by
// id descending.
func (ms *MYSQLStore) GetRecentReviews(ctx context.Context, limit int) ([]entity.ReviewFull, error) {
	query := `
	SELECT
		r.id, r.user_id, r.product_id, r.order_item_id, r.rating,
		r.title, r.comment, r.status, r.created_at,
		u.name AS user_name,
		u.email AS user_email,
		p.name AS product_name,
		p.price AS product_price
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN products p ON p.id = r.product_id
	WHERE r.status = :status
	ORDER BY r.created_at DESC, r.id DESC
	LIMIT :limit`

	rows, err := QueryListNamed[reviewFullRow](ctx, ms.DB(), query, map[string]any{
		"status": entity.ReviewStatusApproved.String(),
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get recent reviews: %w", err)
	}

	reviews := make([]entity.ReviewFull, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, entity.ReviewFull{
			Review: entity.Review{
				ID:          r.ID,
				UserID:      r.UserID,
				ProductID:   r.ProductID,
				OrderItemID: r.OrderItemID,
				Rating:      r.Rating,
				Title:       r.Title,
				Comment:     r.Comment,
				Status:      r.Status,
				CreatedAt:   r.CreatedAt,
			},
			User: entity.User{
				ID:    r.UserID,
				Name:  r.UserName,
				Email: r.UserEmail,
			},
			Product: entity.ProductRef{
				ID:    r.ProductID,
				Name:  r.ProductName,
				Price: r.ProductPrice,
			},
		})
	}
	return reviews, nil
}

// GetAverageRating returns the mean rating over approved reviews rounded
// half-up to 2 decimals, or zero when no approved reviews exist.
func (ms *MYSQLStore) GetAverageRating(ctx context.Context) (decimal.Decimal, error) {
	type row struct {
		Avg decimal.NullDecimal `db:"avg"`
	}
	query := `
	SELECT AVG(rating) AS avg
	FROM reviews
	WHERE status = :status`

	r, err := QueryNamedOne[row](ctx, ms.DB(), query, map[string]any{
		"status": entity.ReviewStatusApproved.String(),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't get average rating: %w", err)
	}
	if !r.Avg.Valid {
		return decimal.Zero, nil
	}
	return r.Avg.Decimal.Round(2), nil
}

// CountApproved counts approved reviews.
func (ms *MYSQLStore) CountApproved(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE status = :status`

	count, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"status": entity.ReviewStatusApproved.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("can't count approved reviews: %w", err)
	}
	return count, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/shopspring/decimal"
)

type productsStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Products() dependency.Products {
	return &productsStore{MYSQLStore: ms}
}

const productColumns = `id, name, price, category_id, stock, status, sales_count, view_count, average_rating, reviews_count, created_at`

type topProductRow struct {
	entity.Product
	CategoryName    string              `db:"category_name"`
	OrderItemsCount int                 `db:"order_items_count"`
	AvgReviewRating decimal.NullDecimal `db:"avg_review_rating"`
}

// GetTopProducts ranks products by their associated order-item row count
// (not quantity-weighted). The review-rating average deliberately spans all
// review statuses; only the review analytics filter to approved.
func (ms *MYSQLStore) GetTopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	query := `
	SELECT
		p.id, p.name, p.price, p.category_id, p.stock, p.status,
		p.sales_count, p.view_count, p.average_rating, p.reviews_count, p.created_at,
		c.name AS category_name,
		(SELECT COUNT(*) FROM order_items oi WHERE oi.product_id = p.id) AS order_items_count,
		(SELECT AVG(r.rating) FROM reviews r WHERE r.product_id = p.id) AS avg_review_rating
	FROM products p
	JOIN categories c ON c.id = p.category_id
	ORDER BY order_items_count DESC, p.id DESC
	LIMIT :limit`

	rows, err := QueryListNamed[topProductRow](ctx, ms.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get top products: %w", err)
	}

	top := make([]entity.TopProduct, 0, len(rows))
	for _, r := range rows {
		top = append(top, entity.TopProduct{
			Product: r.Product,
			Category: entity.Category{
				ID:   r.Product.CategoryID,
				Name: r.CategoryName,
			},
			OrderItemsCount: r.OrderItemsCount,
			AvgReviewRating: r.AvgReviewRating,
		})
	}
	return top, nil
}

// GetCategoryPerformance groups products by category, counting products and
// summing cumulative units sold per category, highest sellers first.
func (ms *MYSQLStore) GetCategoryPerformance(ctx context.Context) ([]entity.CategoryPerformance, error) {
	query := `
	SELECT
		c.name AS name,
		COUNT(p.id) AS products_count,
		COALESCE(SUM(p.sales_count), 0) AS total_sales
	FROM products p
	JOIN categories c ON c.id = p.category_id
	GROUP BY c.id, c.name
	ORDER BY total_sales DESC`

	perf, err := QueryListNamed[entity.CategoryPerformance](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get category performance: %w", err)
	}
	return perf, nil
}

type productRevenueRow struct {
	entity.Product
	CategoryName string          `db:"category_name"`
	Revenue      decimal.Decimal `db:"revenue"`
}

// GetTopPerformers ranks products by revenue = sales_count * price.
func (ms *MYSQLStore) GetTopPerformers(ctx context.Context, limit int) ([]entity.ProductRevenue, error) {
	query := `
	SELECT
		p.id, p.name, p.price, p.category_id, p.stock, p.status,
		p.sales_count, p.view_count, p.average_rating, p.reviews_count, p.created_at,
		c.name AS category_name,
		(p.sales_count * p.price) AS revenue
	FROM products p
	JOIN categories c ON c.id = p.category_id
	ORDER BY revenue DESC, p.id DESC
	LIMIT :limit`

	rows, err := QueryListNamed[productRevenueRow](ctx, ms.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get top performers: %w", err)
	}

	performers := make([]entity.ProductRevenue, 0, len(rows))
	for _, r := range rows {
		performers = append(performers, entity.ProductRevenue{
			Product: r.Product,
			Category: entity.Category{
				ID:   r.Product.CategoryID,
				Name: r.CategoryName,
			},
			Revenue: r.Revenue,
		})
	}
	return performers, nil
}

// TopSelling returns products ordered by cumulative units sold.
func (ms *MYSQLStore) TopSelling(ctx context.Context, limit int) ([]entity.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	ORDER BY sales_count DESC, id DESC
	LIMIT :limit`

	prds, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get top selling products: %w", err)
	}
	return prds, nil
}

// TopRated returns reviewed products ordered by the cached average rating,
// reviews count breaking ties. Products without reviews are excluded.
func (ms *MYSQLStore) TopRated(ctx context.Context, limit int) ([]entity.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE reviews_count > 0
	ORDER BY average_rating DESC, reviews_count DESC, id DESC
	LIMIT :limit`

	prds, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get top rated products: %w", err)
	}
	return prds, nil
}

// MostViewed returns products ordered by view count.
func (ms *MYSQLStore) MostViewed(ctx context.Context, limit int) ([]entity.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	ORDER BY view_count DESC, id DESC
	LIMIT :limit`

	prds, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get most viewed products: %w", err)
	}
	return prds, nil
}

// Count counts all products regardless of status.
func (ms *MYSQLStore) Count(ctx context.Context) (int, error) {
	count, err := QueryCountNamed(ctx, ms.DB(), `SELECT COUNT(*) FROM products`, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't count products: %w", err)
	}
	return count, nil
}

// RecomputeRatingAggregate recomputes the cached average_rating and
// reviews_count for a product from its approved reviews and persists both.
// The review write-path must call this after any approved-review mutation;
// nothing triggers it implicitly.
func (ms *MYSQLStore) RecomputeRatingAggregate(ctx context.Context, productID int) (entity.RatingAggregate, error) {
	var agg entity.RatingAggregate
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		type row struct {
			Avg decimal.NullDecimal `db:"avg"`
			Cnt int                 `db:"cnt"`
		}
		query := `
		SELECT AVG(rating) AS avg, COUNT(*) AS cnt
		FROM reviews
		WHERE product_id = :productId AND status = :status`

		r, err := QueryNamedOne[row](ctx, rep.DB(), query, map[string]any{
			"productId": productID,
			"status":    entity.ReviewStatusApproved.String(),
		})
		if err != nil {
			return fmt.Errorf("can't get rating aggregate: %w", err)
		}

		agg.ReviewsCount = r.Cnt
		if r.Avg.Valid {
			agg.AverageRating = r.Avg.Decimal.Round(2)
		} else {
			agg.AverageRating = decimal.Zero
		}

		update := `
		UPDATE products
		SET average_rating = :avg, reviews_count = :cnt
		WHERE id = :productId`

		if err := ExecNamed(ctx, rep.DB(), update, map[string]any{
			"avg":       agg.AverageRating,
			"cnt":       agg.ReviewsCount,
			"productId": productID,
		}); err != nil {
			return fmt.Errorf("can't update rating aggregate: %w", err)
		}
		return nil
	})
	if err != nil {
		return entity.RatingAggregate{}, err
	}
	return agg, nil
}

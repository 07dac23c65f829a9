package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Analytics interface {
		// GetSalesTrend groups completed orders created at or after from by
		// calendar day, most recent day first.
		GetSalesTrend(ctx context.Context, from time.Time) ([]entity.SalesTrendPoint, error)
		// SalesTotal sums completed-order amounts created in [from, to).
		// A zero to leaves the window open-ended.
		SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
		// GetInventoryStatus buckets all products by stock level against the
		// given low-stock threshold.
		GetInventoryStatus(ctx context.Context, lowStockThreshold int) (entity.InventoryStatus, error)
	}

	Orders interface {
		// GetOrdersByStatus groups all orders by status with per-status count
		// and amount sum, unconstrained by time window.
		GetOrdersByStatus(ctx context.Context) ([]entity.StatusBreakdown, error)
		// GetRecentOrders returns the most recently created orders expanded
		// with their purchasing user and product-joined line items.
		GetRecentOrders(ctx context.Context, limit int) ([]entity.OrderFull, error)
		// CountByStatus counts orders in the given status.
		CountByStatus(ctx context.Context, status entity.OrderStatusName) (int, error)
		// TotalRevenue sums completed-order amounts over all time.
		TotalRevenue(ctx context.Context) (decimal.Decimal, error)
		// AverageOrderValue returns the global mean completed-order amount.
		AverageOrderValue(ctx context.Context) (decimal.Decimal, error)
	}

	Products interface {
		// GetTopProducts returns products ranked by associated order-item row
		// count, annotated with category and mean review rating across all
		// review statuses.
		GetTopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error)
		// GetCategoryPerformance groups products by category with product
		// count and summed sales_count, highest sellers first.
		GetCategoryPerformance(ctx context.Context) ([]entity.CategoryPerformance, error)
		// GetTopPerformers ranks products by revenue = sales_count * price.
		GetTopPerformers(ctx context.Context, limit int) ([]entity.ProductRevenue, error)
		// TopSelling returns products ordered by cumulative units sold.
		TopSelling(ctx context.Context, limit int) ([]entity.Product, error)
		// TopRated returns reviewed products ordered by cached average rating.
		TopRated(ctx context.Context, limit int) ([]entity.Product, error)
		// MostViewed returns products ordered by view count.
		MostViewed(ctx context.Context, limit int) ([]entity.Product, error)
		// Count counts all products regardless of status.
		Count(ctx context.Context) (int, error)
		// RecomputeRatingAggregate recomputes and persists the cached
		// average_rating and reviews_count for a product from its approved
		// reviews. The external review write-path must call it after any
		// approved-review mutation.
		RecomputeRatingAggregate(ctx context.Context, productID int) (entity.RatingAggregate, error)
	}

	Reviews interface {
		// GetRatingDistribution counts approved reviews per rating value,
		// highest rating first, omitting ratings with no occurrences.
		GetRatingDistribution(ctx context.Context) ([]entity.RatingBucket, error)
		// GetRecentReviews returns the most recent approved reviews expanded
		// with reviewer and product.
		GetRecentReviews(ctx context.Context, limit int) ([]entity.ReviewFull, error)
		// GetAverageRating returns the mean rating over approved reviews
		// rounded to 2 decimals, or zero when none exist.
		GetAverageRating(ctx context.Context) (decimal.Decimal, error)
		// CountApproved counts approved reviews.
		CountApproved(ctx context.Context) (int, error)
	}

	Repository interface {
		Analytics() Analytics
		Orders() Orders
		Products() Products
		Reviews() Reviews
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)

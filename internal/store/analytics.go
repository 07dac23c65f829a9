package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/shopspring/decimal"
)

type analyticsStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Analytics() dependency.Analytics {
	return &analyticsStore{MYSQLStore: ms}
}

// GetSalesTrend groups completed orders created at or after from by calendar
// day. Days are sorted descending so the most recent day comes first.
func (ms *MYSQLStore) GetSalesTrend(ctx context.Context, from time.Time) ([]entity.SalesTrendPoint, error) {
	query := `
	SELECT
		DATE(created_at) AS date,
		COUNT(*) AS orders_count,
		SUM(total_amount) AS total_sales,
		AVG(total_amount) AS average_order_value
	FROM orders
	WHERE status = :status AND created_at >= :from
	GROUP BY DATE(created_at)
	ORDER BY date DESC`

	trend, err := QueryListNamed[entity.SalesTrendPoint](ctx, ms.DB(), query, map[string]any{
		"status": entity.OrderStatusCompleted.String(),
		"from":   from,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get sales trend: %w", err)
	}
	return trend, nil
}

// SalesTotal sums completed-order amounts created in [from, to). A zero to
// leaves the window open-ended. Returns zero when no orders match.
func (ms *MYSQLStore) SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	type row struct {
		Total decimal.Decimal `db:"total"`
	}

	query := `
	SELECT COALESCE(SUM(total_amount), 0) AS total
	FROM orders
	WHERE status = :status AND created_at >= :from`
	params := map[string]any{
		"status": entity.OrderStatusCompleted.String(),
		"from":   from,
	}
	if !to.IsZero() {
		query += ` AND created_at < :to`
		params["to"] = to
	}

	r, err := QueryNamedOne[row](ctx, ms.DB(), query, params)
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't get sales total: %w", err)
	}
	return r.Total, nil
}

// GetInventoryStatus buckets every product by its stock level. The buckets
// partition the product set: stock = 0 is out of stock, 0 < stock <=
// threshold is low stock, everything above the threshold is in stock.
func (ms *MYSQLStore) GetInventoryStatus(ctx context.Context, lowStockThreshold int) (entity.InventoryStatus, error) {
	query := `
	SELECT
		COUNT(*) AS total_products,
		COALESCE(SUM(stock = 0), 0) AS out_of_stock,
		COALESCE(SUM(stock > 0 AND stock <= :threshold), 0) AS low_stock,
		COALESCE(SUM(stock > :threshold), 0) AS in_stock
	FROM products`

	is, err := QueryNamedOne[entity.InventoryStatus](ctx, ms.DB(), query, map[string]any{
		"threshold": lowStockThreshold,
	})
	if err != nil {
		return entity.InventoryStatus{}, fmt.Errorf("can't get inventory status: %w", err)
	}
	return is, nil
}

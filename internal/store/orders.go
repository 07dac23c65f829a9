package store

import (
	"context"
	"fmt"

	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/shopspring/decimal"
)

type ordersStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Orders() dependency.Orders {
	return &ordersStore{MYSQLStore: ms}
}

// GetOrdersByStatus groups all orders by status, no time window applied.
func (ms *MYSQLStore) GetOrdersByStatus(ctx context.Context) ([]entity.StatusBreakdown, error) {
	query := `
	SELECT
		status,
		COUNT(*) AS count,
		COALESCE(SUM(total_amount), 0) AS total_amount
	FROM orders
	GROUP BY status`

	breakdown, err := QueryListNamed[entity.StatusBreakdown](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get orders by status: %w", err)
	}
	return breakdown, nil
}

type orderItemProductRow struct {
	ID           int             `db:"id"`
	OrderID      int             `db:"order_id"`
	ProductID    int             `db:"product_id"`
	Quantity     int             `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
	ProductName  string          `db:"product_name"`
	ProductPrice decimal.Decimal `db:"product_price"`
}

// GetRecentOrders returns the limit most recently created orders, each
// expanded with its purchasing user and its order items joined to product
// details. Ties on created_at are broken by id descending so the listing is
// deterministic.
func (ms *MYSQLStore) GetRecentOrders(ctx context.Context, limit int) ([]entity.OrderFull, error) {
	query := `
	SELECT id, user_id, address_id, total_amount, status, payment_status, created_at
	FROM orders
	ORDER BY created_at DESC, id DESC
	LIMIT :limit`

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get recent orders: %w", err)
	}
	if len(orders) == 0 {
		return []entity.OrderFull{}, nil
	}

	orderIds := make([]int, 0, len(orders))
	userIds := make([]int, 0, len(orders))
	for _, o := range orders {
		orderIds = append(orderIds, o.ID)
		userIds = append(userIds, o.UserID)
	}

	itemsQuery := `
	SELECT
		oi.id,
		oi.order_id,
		oi.product_id,
		oi.quantity,
		oi.price,
		p.name AS product_name,
		p.price AS product_price
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	WHERE oi.order_id IN (:orderIds)
	ORDER BY oi.order_id, oi.id`

	itemRows, err := QueryListNamed[orderItemProductRow](ctx, ms.DB(), itemsQuery, map[string]any{
		"orderIds": orderIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	usersQuery := `
	SELECT id, name, email
	FROM users
	WHERE id IN (:userIds)`

	users, err := QueryListNamed[entity.User](ctx, ms.DB(), usersQuery, map[string]any{
		"userIds": userIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order users: %w", err)
	}

	usersById := make(map[int]entity.User, len(users))
	for _, u := range users {
		usersById[u.ID] = u
	}
	itemsByOrderId := make(map[int][]entity.OrderItemProduct, len(orders))
	for _, ir := range itemRows {
		itemsByOrderId[ir.OrderID] = append(itemsByOrderId[ir.OrderID], entity.OrderItemProduct{
			OrderItem: entity.OrderItem{
				ID:        ir.ID,
				OrderID:   ir.OrderID,
				ProductID: ir.ProductID,
				Quantity:  ir.Quantity,
				Price:     ir.Price,
			},
			Product: entity.ProductRef{
				ID:    ir.ProductID,
				Name:  ir.ProductName,
				Price: ir.ProductPrice,
			},
		})
	}

	full := make([]entity.OrderFull, 0, len(orders))
	for _, o := range orders {
		full = append(full, entity.OrderFull{
			Order:      o,
			User:       usersById[o.UserID],
			OrderItems: itemsByOrderId[o.ID],
		})
	}
	return full, nil
}

// CountByStatus counts orders in the given status.
func (ms *MYSQLStore) CountByStatus(ctx context.Context, status entity.OrderStatusName) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = :status`

	count, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"status": status.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("can't count orders by status: %w", err)
	}
	return count, nil
}

// TotalRevenue sums completed-order amounts over all time.
func (ms *MYSQLStore) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	type row struct {
		Total decimal.Decimal `db:"total"`
	}
	query := `
	SELECT COALESCE(SUM(total_amount), 0) AS total
	FROM orders
	WHERE status = :status`

	r, err := QueryNamedOne[row](ctx, ms.DB(), query, map[string]any{
		"status": entity.OrderStatusCompleted.String(),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't get total revenue: %w", err)
	}
	return r.Total, nil
}

// AverageOrderValue returns the global mean completed-order amount, zero
// when no completed orders exist.
func (ms *MYSQLStore) AverageOrderValue(ctx context.Context) (decimal.Decimal, error) {
	type row struct {
		Avg decimal.Decimal `db:"avg"`
	}
	query := `
	SELECT COALESCE(AVG(total_amount), 0) AS avg
	FROM orders
	WHERE status = :status`

	r, err := QueryNamedOne[row](ctx, ms.DB(), query, map[string]any{
		"status": entity.OrderStatusCompleted.String(),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't get average order value: %w", err)
	}
	return r.Avg, nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTrendPoint aggregates completed orders for one calendar day.
type SalesTrendPoint struct {
	Date              time.Time       `db:"date" json:"date"`
	OrdersCount       int             `db:"orders_count" json:"orders_count"`
	TotalSales        decimal.Decimal `db:"total_sales" json:"total_sales"`
	AverageOrderValue decimal.Decimal `db:"average_order_value" json:"average_order_value"`
}

// SalesSummary rolls a sales trend up into single values. AverageOrderValue
// is the arithmetic mean of the per-day averages, not a volume-weighted
// global mean.
type SalesSummary struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// DashboardOverview is the flat snapshot composed for the dashboard landing
// page. The six values are computed by independent queries and may reflect
// slightly different instants under concurrent writes.
type DashboardOverview struct {
	DailySales      decimal.Decimal `json:"daily_sales"`
	MonthlySales    decimal.Decimal `json:"monthly_sales"`
	PendingOrders   int             `json:"pending_orders"`
	TotalProducts   int             `json:"total_products"`
	TotalReviews    int             `json:"total_reviews"`
	InventoryStatus InventoryStatus `json:"inventory_status"`
}

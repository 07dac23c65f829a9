package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatusName is the custom type to enforce enum-like behavior
type ProductStatusName string

func (psn ProductStatusName) String() string {
	return string(psn)
}

const (
	ProductStatusActive   ProductStatusName = "active"
	ProductStatusInactive ProductStatusName = "inactive"
	ProductStatusDraft    ProductStatusName = "draft"
)

// ValidProductStatusNames is a set of valid product status names
var ValidProductStatusNames = map[ProductStatusName]bool{
	ProductStatusActive:   true,
	ProductStatusInactive: true,
	ProductStatusDraft:    true,
}

// Product represents the products table. AverageRating and ReviewsCount are
// cached aggregates over approved reviews; they are only rewritten through
// RecomputeRatingAggregate.
type Product struct {
	ID            int               `db:"id" json:"id"`
	Name          string            `db:"name" json:"name"`
	Price         decimal.Decimal   `db:"price" json:"price"`
	CategoryID    int               `db:"category_id" json:"category_id"`
	Stock         int               `db:"stock" json:"stock"`
	Status        ProductStatusName `db:"status" json:"status"`
	SalesCount    int               `db:"sales_count" json:"sales_count"`
	ViewCount     int               `db:"view_count" json:"view_count"`
	AverageRating decimal.Decimal   `db:"average_rating" json:"average_rating"`
	ReviewsCount  int               `db:"reviews_count" json:"reviews_count"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
}

// Category represents the categories table
type Category struct {
	ID   int    `db:"category_id" json:"id"`
	Name string `db:"category_name" json:"name"`
}

// ProductRef is the product detail nested into expanded order items and
// reviews.
type ProductRef struct {
	ID    int             `db:"product_id" json:"id"`
	Name  string          `db:"product_name" json:"name"`
	Price decimal.Decimal `db:"product_price" json:"price"`
}

// TopProduct is a product annotated with its category, associated
// order-item row count and mean review rating across all review statuses.
type TopProduct struct {
	Product
	Category        Category            `json:"category"`
	OrderItemsCount int                 `db:"order_items_count" json:"order_items_count"`
	AvgReviewRating decimal.NullDecimal `db:"avg_review_rating" json:"avg_review_rating"`
}

// ProductRevenue ranks a product by revenue = sales_count * price.
type ProductRevenue struct {
	Product
	Category Category        `json:"category"`
	Revenue  decimal.Decimal `db:"revenue" json:"revenue"`
}

// CategoryPerformance is one row of the sales-by-category grouping.
// TotalSales counts cumulative units sold, not currency.
type CategoryPerformance struct {
	Name          string `db:"name" json:"name"`
	ProductsCount int    `db:"products_count" json:"products_count"`
	TotalSales    int    `db:"total_sales" json:"total_sales"`
}

// InventoryStatus buckets products by stock level. The buckets are mutually
// exclusive and exhaustive: OutOfStock + LowStock + InStock == TotalProducts.
type InventoryStatus struct {
	TotalProducts int `db:"total_products" json:"total_products"`
	OutOfStock    int `db:"out_of_stock" json:"out_of_stock"`
	LowStock      int `db:"low_stock" json:"low_stock"`
	InStock       int `db:"in_stock" json:"in_stock"`
}

// RatingAggregate is the recomputed cached rating state for a product.
type RatingAggregate struct {
	AverageRating decimal.Decimal `json:"average_rating"`
	ReviewsCount  int             `json:"reviews_count"`
}

package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusName is the custom type to enforce enum-like behavior
type OrderStatusName string

func (osn OrderStatusName) String() string {
	return string(osn)
}

const (
	OrderStatusPending    OrderStatusName = "pending"
	OrderStatusProcessing OrderStatusName = "processing"
	OrderStatusCompleted  OrderStatusName = "completed"
	OrderStatusCancelled  OrderStatusName = "cancelled"
	OrderStatusRefunded   OrderStatusName = "refunded"
)

// ValidOrderStatusNames is a set of valid order status names
var ValidOrderStatusNames = map[OrderStatusName]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
	OrderStatusRefunded:   true,
}

// Order represents the orders table
type Order struct {
	ID            int             `db:"id" json:"id"`
	UserID        int             `db:"user_id" json:"user_id"`
	AddressID     sql.NullInt32   `db:"address_id" json:"address_id"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status        OrderStatusName `db:"status" json:"status"`
	PaymentStatus string          `db:"payment_status" json:"payment_status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

func (o *Order) TotalAmountDecimal() decimal.Decimal {
	return o.TotalAmount.Round(2)
}

// OrderItem represents the order_items table. Price is the unit price at
// the time of purchase, not the product's current price.
type OrderItem struct {
	ID        int             `db:"id" json:"id"`
	OrderID   int             `db:"order_id" json:"order_id"`
	ProductID int             `db:"product_id" json:"product_id"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
}

// OrderItemProduct is an order item expanded with its product.
type OrderItemProduct struct {
	OrderItem
	Product ProductRef `json:"product"`
}

// OrderFull is an order expanded with its purchasing user and line items,
// as returned by the recent-orders listing.
type OrderFull struct {
	Order
	User       User               `json:"user"`
	OrderItems []OrderItemProduct `json:"order_items"`
}

// StatusBreakdown is one row of the orders-by-status grouping.
type StatusBreakdown struct {
	Status      OrderStatusName `db:"status" json:"status"`
	Count       int             `db:"count" json:"count"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
}

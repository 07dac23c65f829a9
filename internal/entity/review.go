package entity

import (
	"database/sql"
	"time"
)

// ReviewStatusName is the custom type to enforce enum-like behavior
type ReviewStatusName string

func (rsn ReviewStatusName) String() string {
	return string(rsn)
}

const (
	ReviewStatusPending  ReviewStatusName = "pending"
	ReviewStatusApproved ReviewStatusName = "approved"
	ReviewStatusRejected ReviewStatusName = "rejected"
)

// ValidReviewStatusNames is a set of valid review status names
var ValidReviewStatusNames = map[ReviewStatusName]bool{
	ReviewStatusPending:  true,
	ReviewStatusApproved: true,
	ReviewStatusRejected: true,
}

// Review represents the reviews table. Only approved reviews participate in
// rating aggregates.
type Review struct {
	ID          int              `db:"id" json:"id"`
	UserID      int              `db:"user_id" json:"user_id"`
	ProductID   int              `db:"product_id" json:"product_id"`
	OrderItemID sql.NullInt32    `db:"order_item_id" json:"order_item_id"`
	Rating      int              `db:"rating" json:"rating"`
	Title       string           `db:"title" json:"title"`
	Comment     string           `db:"comment" json:"comment"`
	Status      ReviewStatusName `db:"status" json:"status"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// ReviewFull is a review expanded with its reviewer and product.
type ReviewFull struct {
	Review
	User    User       `json:"user"`
	Product ProductRef `json:"product"`
}

// RatingBucket is one row of the rating distribution. Ratings with zero
// occurrences are omitted from the distribution entirely.
type RatingBucket struct {
	Rating int `db:"rating" json:"rating"`
	Count  int `db:"count" json:"count"`
}

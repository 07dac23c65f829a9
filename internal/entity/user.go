package entity

// User represents the users table. Referenced by orders and reviews for
// attribution only.
type User struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

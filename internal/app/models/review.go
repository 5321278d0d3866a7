package models

import "time"

// Review defines the review model based on the 'reviews' table.
// One review per user and product.
type Review struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"user_id" db:"user_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Rating    int     `json:"rating" db:"rating"`
	Comment   *string `json:"comment" db:"comment"`

	UserName string `json:"user_name,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

package models

import "time"

// Category defines the category model based on the 'categories' table
type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`

	// Populated by list/get joins
	ProductCount int `json:"product_count" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

package models

import "time"

// Product defines the product model based on the 'products' table
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	CategoryID  *int64  `json:"category_id" db:"category_id"`

	// Populated by list/get joins
	CategoryName *string `json:"category_name,omitempty" db:"-"`
	AvgRating    float64 `json:"avg_rating" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

package models

import "time"

// Order defines the order header based on the 'orders' table.
// TotalAmount is computed from the line items at creation time.
type Order struct {
	ID          int64   `json:"id" db:"id"`
	UserID      int64   `json:"user_id" db:"user_id"`
	TotalAmount float64 `json:"total_amount" db:"total_amount"`
	Status      string  `json:"status" db:"status"`

	// Populated by list/get joins
	UserName  string      `json:"user_name,omitempty" db:"-"`
	UserEmail string      `json:"user_email,omitempty" db:"-"`
	Items     []OrderItem `json:"items,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OrderItem is one line item within an order. Price snapshots the
// product price at order time and is never re-derived from the live
// product row.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`

	ProductName *string `json:"product_name,omitempty" db:"-"`
}

package dto

// OrderItemRequest is one line item in an order creation request.
// Price is the snapshot at order time, supplied by the caller.
type OrderItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// CreateOrderRequest creates an order header plus its line items
type CreateOrderRequest struct {
	UserID int64              `json:"user_id" binding:"required"`
	Items  []OrderItemRequest `json:"items" binding:"required"`
}

// UpdateOrderStatusRequest moves an order to a new lifecycle state
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderFilters narrows and pages the order listing
type OrderFilters struct {
	UserID int64  `form:"user_id"`
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// OrderStats aggregates order counts per status and total revenue
// excluding cancelled orders.
type OrderStats struct {
	CountsByStatus map[string]int `json:"counts_by_status"`
	TotalRevenue   float64        `json:"total_revenue"`
}

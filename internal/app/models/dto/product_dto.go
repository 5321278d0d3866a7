package dto

// CreateProductRequest creates a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryID  int64   `json:"category_id"`
}

// UpdateProductRequest updates a product; nil fields are left unchanged
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *int64   `json:"category_id"`
}

// ProductFilters narrows, sorts and pages the product listing
type ProductFilters struct {
	CategoryID int64    `form:"category_id"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	Search     string   `form:"search"`
	SortBy     string   `form:"sort_by"`
	SortOrder  string   `form:"sort_order"`
	Limit      int      `form:"limit"`
	Offset     int      `form:"offset"`
}

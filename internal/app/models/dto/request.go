package dto

// CreateCategoryRequest creates a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateReviewRequest creates a review; one per user and product
type CreateReviewRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	ProductID int64  `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateCourseRequest creates a course
type CreateCourseRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
}

package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrValidationFailed      = errors.New("validation failed")
	ErrBadRequest            = errors.New("bad request")

	// Connection-class failures: pool exhaustion, timeouts, unreachable store.
	ErrConnectionFailed = errors.New("database connection failed")
)

// Student errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrStudentIDExists  = errors.New("student ID already exists")
	ErrInvalidStudentID = errors.New("student ID cannot be empty")
)

// Order errors
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNoItems      = errors.New("order must contain at least one item")
	ErrOrderCreateFailed = errors.New("failed to create order")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// Store errors (users/products/categories/reviews)
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("a user with this email already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("a category with this name already exists")
	ErrReviewNotFound   = errors.New("review not found")
	ErrReviewExists     = errors.New("user has already reviewed this product")
)

// Course errors
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course code already exists")
)

// CustomError carries a sentinel plus a contextual message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

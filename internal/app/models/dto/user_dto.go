package dto

// CreateUserRequest registers a user. The password is salted-hashed
// before storage and never returned.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// UpdateUserRequest updates a user; nil fields are left unchanged
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// UserFilters narrows and pages the user listing
type UserFilters struct {
	Role   string `form:"role"`
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

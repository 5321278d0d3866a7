package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
)

// UserController handles user account operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers lists users; password hashes never leave the store
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	var filters dto.UserFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		respondInvalidBody(ctx, "Invalid user filters", err)
		return
	}

	users, err := c.userService.GetAllUsers(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	limit, offset := helpers.NormalizeLimitOffset(filters.Limit, filters.Offset)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"users":      users,
		"pagination": helpers.NewPaginationInfo(limit, offset, len(users)),
	}))
}

// GetUserByID retrieves a user by id
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// CreateUser registers a new user account
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid user data", err)
		return
	}

	user, err := c.userService.CreateUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMutationResponse(user))
}

// UpdateUser applies a partial update to a user account
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid user data", err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(user))
}

// DeleteUser removes a user account
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(gin.H{"id": id}))
}

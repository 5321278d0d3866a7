package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
)

// CategoryController handles category operations
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetAllCategories lists every category with its product count
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories))
}

// GetCategoryByID retrieves a category by id
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	category, err := c.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(category))
}

// CreateCategory stores a new category
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid category data", err)
		return
	}

	category, err := c.categoryService.CreateCategory(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMutationResponse(category))
}

// DeleteCategory removes a category
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.categoryService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(gin.H{"id": id}))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
)

// ProductController handles product catalog operations
type ProductController struct {
	productService *services.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetAllProducts lists products with filtering, sorting and paging
func (c *ProductController) GetAllProducts(ctx *gin.Context) {
	var filters dto.ProductFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		respondInvalidBody(ctx, "Invalid product filters", err)
		return
	}

	products, err := c.productService.GetAllProducts(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	limit, offset := helpers.NormalizeLimitOffset(filters.Limit, filters.Offset)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"products":   products,
		"pagination": helpers.NewPaginationInfo(limit, offset, len(products)),
	}))
}

// GetProductByID retrieves a product with rating and category info
func (c *ProductController) GetProductByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	product, err := c.productService.GetProductByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(product))
}

// CreateProduct stores a new product
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid product data", err)
		return
	}

	product, err := c.productService.CreateProduct(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMutationResponse(product))
}

// UpdateProduct applies a partial update to a product
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid product data", err)
		return
	}

	product, err := c.productService.UpdateProduct(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(product))
}

// DeleteProduct removes a product
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.productService.DeleteProduct(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(gin.H{"id": id}))
}

package services

import (
	"context"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
)

// ProductService handles product catalog business logic
type ProductService struct {
	productRepo *repositories.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo *repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// GetAllProducts returns products matching the filters, with category
// names and average ratings joined in.
func (s *ProductService) GetAllProducts(ctx context.Context, filters dto.ProductFilters) ([]*models.Product, error) {
	filters.Limit, filters.Offset = helpers.NormalizeLimitOffset(filters.Limit, filters.Offset)
	return s.productRepo.GetAll(ctx, filters)
}

// GetProductByID returns a single product
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct stores a new product
func (s *ProductService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}
	if req.Description != "" {
		product.Description = &req.Description
	}
	if req.CategoryID != 0 {
		product.CategoryID = &req.CategoryID
	}
	return s.productRepo.Create(ctx, product)
}

// UpdateProduct applies the non-nil fields to an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req dto.UpdateProductRequest) (*models.Product, error) {
	return s.productRepo.Update(ctx, id, req)
}

// DeleteProduct removes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

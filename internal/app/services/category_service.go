package services

import (
	"context"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetAllCategories returns every category with its product count
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// GetCategoryByID returns a single category
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// CreateCategory stores a new category; names are unique
func (s *CategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name}
	if req.Description != "" {
		category.Description = &req.Description
	}
	return s.categoryRepo.Create(ctx, category)
}

// DeleteCategory removes a category; its products keep a null category
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}

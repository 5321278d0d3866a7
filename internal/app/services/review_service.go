package services

import (
	"context"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
)

// ReviewService handles product review business logic
type ReviewService struct {
	reviewRepo *repositories.ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo *repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// GetReviewsByProduct returns every review for a product, newest first
func (s *ReviewService) GetReviewsByProduct(ctx context.Context, productID int64) ([]*models.Review, error) {
	return s.reviewRepo.GetByProductID(ctx, productID)
}

// CreateReview stores a review; one per user and product
func (s *ReviewService) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
	}
	if req.Comment != "" {
		review.Comment = &req.Comment
	}
	return s.reviewRepo.Create(ctx, review)
}

// DeleteReview removes a review
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	return s.reviewRepo.Delete(ctx, id)
}

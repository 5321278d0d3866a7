package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
)

// ReviewController handles product review operations
type ReviewController struct {
	reviewService *services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetProductReviews lists every review for a product, newest first
func (c *ReviewController) GetProductReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	reviews, err := c.reviewService.GetReviewsByProduct(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reviews))
}

// CreateReview stores a review; one per user and product
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid review data", err)
		return
	}

	review, err := c.reviewService.CreateReview(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMutationResponse(review))
}

// DeleteReview removes a review
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(gin.H{"id": id}))
}

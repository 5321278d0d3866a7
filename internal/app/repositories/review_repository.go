package repositories

import (
	"context"
	"fmt"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/db"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *db.PostgresDB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(database *db.PostgresDB) *ReviewRepository {
	return &ReviewRepository{db: database}
}

// GetByProductID retrieves all reviews for a product, newest first
func (r *ReviewRepository) GetByProductID(ctx context.Context, productID int64) ([]*models.Review, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT r.id, r.user_id, r.product_id, r.rating, r.comment, r.created_at,
		       u.name AS user_name
		FROM reviews r
		INNER JOIN users u ON r.user_id = u.id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC`, productID)
	if err != nil {
		logger.Error().Err(err).Int64("productID", productID).Msg("Error fetching reviews")
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName); err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, &rv)
	}

	return reviews, rows.Err()
}

// Create inserts one review; the store enforces one review per user and
// product and valid FK references.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO reviews (user_id, product_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		review.UserID, review.ProductID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrReviewExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrProductNotFound
		}
		logger.Error().Err(err).Int64("productID", review.ProductID).Msg("Error creating review")
		return nil, fmt.Errorf("error creating review: %w", err)
	}

	return review, nil
}

// Delete removes one review row
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting review")
		return fmt.Errorf("error deleting review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

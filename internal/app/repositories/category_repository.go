package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/db"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// CategoryRepository handles category database operations
type CategoryRepository struct {
	db *db.PostgresDB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(database *db.PostgresDB) *CategoryRepository {
	return &CategoryRepository{db: database}
}

// GetAll retrieves all categories with product counts, by name
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT c.id, c.name, c.description, c.created_at,
		       COUNT(p.id)::integer AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name ASC`)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching categories")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

// GetByID retrieves one category with its product count
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.db.Pool.QueryRow(ctx, `
		SELECT c.id, c.name, c.description, c.created_at,
		       COUNT(p.id)::integer AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.id = $1
		GROUP BY c.id`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.ProductCount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error retrieving category")
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return &c, nil
}

// Create inserts one category row; names are unique
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		category.Name, category.Description,
	).Scan(&category.ID, &category.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("name", category.Name).Msg("Attempted to create duplicate category")
			return nil, apperrors.ErrCategoryExists
		}
		logger.Error().Err(err).Str("name", category.Name).Msg("Error creating category")
		return nil, fmt.Errorf("error creating category: %w", err)
	}

	return category, nil
}

// Delete removes one category row
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting category")
		return fmt.Errorf("error deleting category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

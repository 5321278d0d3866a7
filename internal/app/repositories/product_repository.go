package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/db"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// productSortColumns whitelists the sortable columns; anything else
// falls back to created_at.
var productSortColumns = map[string]string{
	"name":       "p.name",
	"price":      "p.price",
	"stock":      "p.stock",
	"created_at": "p.created_at",
}

// ProductRepository handles product database operations
type ProductRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(database *db.PostgresDB) *ProductRepository {
	return &ProductRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// buildListQuery composes the filtered, sorted, paged product listing
// with category names and average review ratings joined in.
func (r *ProductRepository) buildListQuery(filters dto.ProductFilters) (string, []interface{}, error) {
	q := r.sb.Select(
		"p.id", "p.name", "p.description", "p.price", "p.stock", "p.category_id",
		"p.created_at", "p.updated_at",
		"c.name AS category_name",
		"COALESCE(AVG(r.rating), 0) AS avg_rating",
	).
		From("products p").
		LeftJoin("categories c ON p.category_id = c.id").
		LeftJoin("reviews r ON r.product_id = p.id")

	if filters.CategoryID != 0 {
		q = q.Where(squirrel.Eq{"p.category_id": filters.CategoryID})
	}
	if filters.MinPrice != nil {
		q = q.Where(squirrel.GtOrEq{"p.price": *filters.MinPrice})
	}
	if filters.MaxPrice != nil {
		q = q.Where(squirrel.LtOrEq{"p.price": *filters.MaxPrice})
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"p.name": pattern},
			squirrel.ILike{"p.description": pattern},
		})
	}

	q = q.GroupBy("p.id", "c.name")

	sortColumn, ok := productSortColumns[filters.SortBy]
	if !ok {
		sortColumn = "p.created_at"
	}
	direction := "DESC"
	if filters.SortOrder == "asc" || filters.SortOrder == "ASC" {
		direction = "ASC"
	}
	q = q.OrderBy(sortColumn + " " + direction)

	if filters.Limit > 0 {
		q = q.Limit(uint64(filters.Limit))
	}
	if filters.Offset > 0 {
		q = q.Offset(uint64(filters.Offset))
	}

	return q.ToSql()
}

// GetAll retrieves products with filtering, sorting, and pagination
func (r *ProductRepository) GetAll(ctx context.Context, filters dto.ProductFilters) ([]*models.Product, error) {
	query, args, err := r.buildListQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to build product list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching products")
		return nil, fmt.Errorf("error fetching products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt, &p.CategoryName, &p.AvgRating,
		); err != nil {
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

// GetByID retrieves one product with category info and average rating
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.Pool.QueryRow(ctx, `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id,
		       p.created_at, p.updated_at,
		       c.name AS category_name,
		       COALESCE(AVG(r.rating), 0) AS avg_rating
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN reviews r ON r.product_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, c.name`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &p.CategoryName, &p.AvgRating)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error retrieving product")
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}

	return &p, nil
}

// Create inserts one product row
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, stock, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		product.Name, product.Description, product.Price, product.Stock, product.CategoryID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Str("name", product.Name).Msg("Error creating product")
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return product, nil
}

// Update applies the non-nil fields of the request to one product row
func (r *ProductRepository) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*models.Product, error) {
	var p models.Product
	err := r.db.Pool.QueryRow(ctx, `
		UPDATE products
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    price = COALESCE($3, price),
		    stock = COALESCE($4, stock),
		    category_id = COALESCE($5, category_id),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING id, name, description, price, stock, category_id, created_at, updated_at`,
		req.Name, req.Description, req.Price, req.Stock, req.CategoryID, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrCategoryNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error updating product")
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return &p, nil
}

// Delete removes one product row
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting product")
		return fmt.Errorf("error deleting product: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

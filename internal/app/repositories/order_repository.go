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
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// OrderRepository handles order database operations, including the one
// multi-statement workflow in the system: transactional order creation.
type OrderRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(database *db.PostgresDB) *OrderRepository {
	return &OrderRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// orderTotal sums quantity times the price snapshot over all line items.
func orderTotal(items []dto.OrderItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Create inserts the order header, one row per line item, and decrements
// each referenced product's stock, all inside one transaction. Any failure
// rolls the whole sequence back: an order never exists without its items
// and matching stock decrements, and stock is never decremented without a
// committed order.
func (r *OrderRepository) Create(ctx context.Context, userID int64, items []dto.OrderItemRequest) (*models.Order, error) {
	var order models.Order

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		totalAmount := orderTotal(items)

		err := tx.QueryRow(ctx, `
			INSERT INTO orders (user_id, total_amount, status)
			VALUES ($1, $2, 'pending')
			RETURNING id, user_id, total_amount, status, created_at, updated_at`,
			userID, totalAmount,
		).Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error inserting order header: %w", err)
		}

		for _, item := range items {
			var itemRow models.OrderItem
			err := tx.QueryRow(ctx, `
				INSERT INTO order_items (order_id, product_id, quantity, price)
				VALUES ($1, $2, $3, $4)
				RETURNING id, order_id, product_id, quantity, price`,
				order.ID, item.ProductID, item.Quantity, item.Price,
			).Scan(&itemRow.ID, &itemRow.OrderID, &itemRow.ProductID, &itemRow.Quantity, &itemRow.Price)
			if err != nil {
				return fmt.Errorf("error inserting order item for product %d: %w", item.ProductID, err)
			}

			cmdTag, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock - $1 WHERE id = $2`,
				item.Quantity, item.ProductID,
			)
			if err != nil {
				return fmt.Errorf("error updating stock for product %d: %w", item.ProductID, err)
			}
			if cmdTag.RowsAffected() == 0 {
				return fmt.Errorf("product %d not found for stock update", item.ProductID)
			}

			order.Items = append(order.Items, itemRow)
		}

		return nil
	})

	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int("items", len(items)).Msg("Order creation rolled back")
		return nil, apperrors.ErrOrderCreateFailed
	}

	logger.Info().Int64("orderID", order.ID).Int64("userID", userID).Float64("total", order.TotalAmount).Msg("Order created")
	return &order, nil
}

// buildListQuery composes the filtered order listing. Predicates are
// appended only for filters that are present; squirrel keeps the
// positional parameter indexes consistent with the bound values.
func (r *OrderRepository) buildListQuery(filters dto.OrderFilters) (string, []interface{}, error) {
	q := r.sb.Select(
		"o.id", "o.user_id", "o.total_amount", "o.status", "o.created_at", "o.updated_at",
		"u.name AS user_name", "u.email AS user_email",
	).
		From("orders o").
		Join("users u ON o.user_id = u.id")

	if filters.UserID != 0 {
		q = q.Where(squirrel.Eq{"o.user_id": filters.UserID})
	}
	if filters.Status != "" {
		q = q.Where(squirrel.Eq{"o.status": filters.Status})
	}

	q = q.OrderBy("o.created_at DESC")

	if filters.Limit > 0 {
		q = q.Limit(uint64(filters.Limit))
	}
	if filters.Offset > 0 {
		q = q.Offset(uint64(filters.Offset))
	}

	return q.ToSql()
}

// GetAll retrieves orders with user display fields, optionally filtered
// by user and status and paged by offset/limit.
func (r *OrderRepository) GetAll(ctx context.Context, filters dto.OrderFilters) ([]*models.Order, error) {
	query, args, err := r.buildListQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to build order list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching orders")
		return nil, fmt.Errorf("error fetching orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
			&o.UserName, &o.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("error scanning order row: %w", err)
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

// GetByID retrieves one order with user display fields and its nested
// line items (product names joined in, items in insertion order).
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.Pool.QueryRow(ctx, `
		SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at, o.updated_at,
		       u.name AS user_name, u.email AS user_email
		FROM orders o
		INNER JOIN users u ON o.user_id = u.id
		WHERE o.id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt, &o.UserName, &o.UserEmail)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error retrieving order")
		return nil, fmt.Errorf("error retrieving order: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name AS product_name
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.ProductName); err != nil {
			return nil, fmt.Errorf("error scanning order item row: %w", err)
		}
		o.Items = append(o.Items, item)
	}

	return &o, rows.Err()
}

// UpdateStatus moves an order to a new lifecycle state
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	var o models.Order
	err := r.db.Pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, user_id, total_amount, status, created_at, updated_at`,
		status, id,
	).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		logger.Error().Err(err).Int64("id", id).Str("status", status).Msg("Error updating order status")
		return nil, fmt.Errorf("error updating order: %w", err)
	}

	return &o, nil
}

// Delete removes one order; order_items cascade at the store level
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting order")
		return fmt.Errorf("error deleting order: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOrderNotFound
	}

	return nil
}

// CountByStatus returns order counts grouped by status
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT status, COUNT(*)::integer AS count FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting orders: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning order count row: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// TotalRevenue sums total_amount over all orders except cancelled ones
func (r *OrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status != 'cancelled'`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error calculating revenue: %w", err)
	}
	return total, nil
}

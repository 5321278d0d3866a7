package services

import (
	"context"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// OrderService handles order business logic
type OrderService struct {
	orderRepo *repositories.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo *repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ValidateOrderItems rejects empty orders and non-positive quantities
// before any transaction is opened.
func ValidateOrderItems(items []dto.OrderItemRequest) error {
	if len(items) == 0 {
		return apperrors.ErrOrderNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return apperrors.NewValidationError("item quantity must be positive")
		}
		if item.Price < 0 {
			return apperrors.NewValidationError("item price cannot be negative")
		}
	}
	return nil
}

// CreateOrder validates the line items and creates the order and its
// stock decrements in a single transaction.
func (s *OrderService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error) {
	if err := ValidateOrderItems(req.Items); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.Create(ctx, req.UserID, req.Items)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("orderID", order.ID).Int64("userID", order.UserID).
		Float64("total", order.TotalAmount).Msg("Order created")
	return order, nil
}

// GetAllOrders returns orders matching the filters, newest first
func (s *OrderService) GetAllOrders(ctx context.Context, filters dto.OrderFilters) ([]*models.Order, error) {
	filters.Limit, filters.Offset = helpers.NormalizeLimitOffset(filters.Limit, filters.Offset)
	return s.orderRepo.GetAll(ctx, filters)
}

// GetOrderByID returns an order with its line items
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// UpdateOrderStatus moves an order to a new lifecycle state after
// checking the state is one of the known values.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}
	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("orderID", id).Str("status", status).Msg("Order status updated")
	return order, nil
}

// DeleteOrder removes an order; its items go with it via cascade
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.orderRepo.Delete(ctx, id)
}

// GetOrderStats aggregates per-status counts and total revenue
func (s *OrderService) GetOrderStats(ctx context.Context) (*dto.OrderStats, error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStats{CountsByStatus: counts, TotalRevenue: revenue}, nil
}

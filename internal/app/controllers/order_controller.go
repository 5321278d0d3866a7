package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
)

// OrderController handles order operations
type OrderController struct {
	orderService *services.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder creates an order with its line items in one transaction
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid order data", err)
		return
	}

	order, err := c.orderService.CreateOrder(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMutationResponse(order))
}

// GetAllOrders lists orders, optionally filtered by user and status
func (c *OrderController) GetAllOrders(ctx *gin.Context) {
	var filters dto.OrderFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		respondInvalidBody(ctx, "Invalid order filters", err)
		return
	}

	orders, err := c.orderService.GetAllOrders(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	limit, offset := helpers.NormalizeLimitOffset(filters.Limit, filters.Offset)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"orders":     orders,
		"pagination": helpers.NewPaginationInfo(limit, offset, len(orders)),
	}))
}

// GetOrderByID retrieves an order with its line items
func (c *OrderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	order, err := c.orderService.GetOrderByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(order))
}

// UpdateOrderStatus moves an order to a new lifecycle state
func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid status data", err)
		return
	}

	order, err := c.orderService.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(order))
}

// DeleteOrder removes an order and its line items
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.orderService.DeleteOrder(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(gin.H{"id": id}))
}

// GetOrderStats returns per-status counts and total revenue
func (c *OrderController) GetOrderStats(ctx *gin.Context) {
	stats, err := c.orderService.GetOrderStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

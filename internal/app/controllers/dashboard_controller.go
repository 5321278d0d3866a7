package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
)

// DashboardController serves the aggregated landing-view stats
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats returns collection counts and the newest students
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

package handlers

import (
	"edilians-parkinfo/internal/core/services"
	"edilians-parkinfo/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the console overview endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview handles the home-page stat tiles
// @Summary Console overview
// @Description Equipment and directory statistics for the home page
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	return response.Success(c, "Dashboard retrieved successfully", h.dashboardService.Overview())
}

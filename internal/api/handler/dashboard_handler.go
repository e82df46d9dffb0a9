package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the aggregated dashboard payload.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}

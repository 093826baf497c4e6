package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Luuchoh/Propiedades-premium/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboardUseCase dashboard.UseCase
}

func NewDashboardHandler(dashboardUseCase dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/Dashboard/GetStats", h.GetStats)
}

func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.GetStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

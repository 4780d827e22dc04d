package http

import (
	"net/http"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the composed dashboard views.
type DashboardHandler struct {
	dashboardService service.DashboardService
	app              dto.HealthResponse
	logger           *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler. name and version are
// reported by the health endpoint.
func NewDashboardHandler(dashboardService service.DashboardService, name, version string, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		app:              dto.HealthResponse{Status: "ok", Name: name, Version: version},
		logger:           logger,
	}
}

// RegisterRoutes registers the dashboard routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetOverview)
	g.GET("/selection", h.GetSelection)
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Market indices, top predictions, gainers and losers in one response
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardOverview
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	overview, err := h.dashboardService.Overview(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to build dashboard")
	}
	return c.JSON(http.StatusOK, overview)
}

// GetSelection godoc
// @Summary Selected stock panel
// @Description Resolve the selected stock (exact symbol, else the first stock) with its prediction and chart
// @Tags dashboard
// @Produce  json
// @Param   symbol    query    string false    "Requested symbol"
// @Param   previous  query    string false    "Previously selected symbol"
// @Success 200 {object} dto.SelectionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/selection [get]
func (h *DashboardHandler) GetSelection(c echo.Context) error {
	selection, err := h.dashboardService.Selection(c.Request().Context(), c.QueryParam("symbol"), c.QueryParam("previous"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to select stock")
	}
	return c.JSON(http.StatusOK, selection)
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *DashboardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.app)
}

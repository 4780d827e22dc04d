package http

import (
	"net/http"
	"time"

	"golang-stock-dashboard/internal/core/views"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler handles HTTP requests for market-wide data.
type MarketHandler struct {
	marketService service.MarketService
	logger        *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService service.MarketService, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{marketService: marketService, logger: logger}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/indices", h.ListIndices)
	g.GET("/movers", h.GetMovers)
	g.GET("/status", h.GetStatus)
}

// ListIndices godoc
// @Summary List market indices
// @Tags market
// @Produce  json
// @Success 200 {array} entity.MarketIndex
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/indices [get]
func (h *MarketHandler) ListIndices(c echo.Context) error {
	indices, err := h.marketService.Indices(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list market indices")
	}
	return c.JSON(http.StatusOK, indices)
}

// GetMovers godoc
// @Summary Top movers
// @Description Stocks ranked by percent change
// @Tags market
// @Produce  json
// @Param   type   query    string false    "gainers or losers" default(gainers)
// @Param   limit  query    int    false    "Maximum number of stocks" default(5)
// @Success 200 {object} dto.MoversResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/movers [get]
func (h *MarketHandler) GetMovers(c echo.Context) error {
	direction := c.QueryParam("type")
	if direction == "" {
		direction = string(views.Gainers)
	}
	limit := common.DefaultMoversLimit
	v, err := queryInt(c, "limit")
	if err != nil {
		return badRequest(c, "Invalid limit")
	}
	if v != nil {
		limit = *v
	}

	movers, err := h.marketService.Movers(c.Request().Context(), direction, limit)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to rank movers")
	}
	return c.JSON(http.StatusOK, movers)
}

// GetStatus godoc
// @Summary Market status
// @Description Whether the exchange session is currently open
// @Tags market
// @Produce  json
// @Success 200 {object} dto.MarketStatus
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/status [get]
func (h *MarketHandler) GetStatus(c echo.Context) error {
	status, err := h.marketService.Status(time.Now())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute market status")
	}
	return c.JSON(http.StatusOK, status)
}

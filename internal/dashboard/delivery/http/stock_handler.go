package http

import (
	"net/http"
	"strconv"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for securities and their charts.
type StockHandler struct {
	stockService service.StockService
	chartService service.ChartService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, chartService service.ChartService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, chartService: chartService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListStocks)
	g.GET("/:symbol", h.GetStock)
	g.GET("/:symbol/chart", h.GetChart)
	g.GET("/:symbol/history", h.GetHistory)
}

// ListStocks godoc
// @Summary List stocks
// @Description List all stocks, optionally filtered by a symbol or name search
// @Tags stocks
// @Produce  json
// @Param   q  query    string false    "Search text"
// @Success 200 {array} entity.Security
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks [get]
func (h *StockHandler) ListStocks(c echo.Context) error {
	stocks, err := h.stockService.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list stocks")
	}
	return c.JSON(http.StatusOK, stocks)
}

// GetStock godoc
// @Summary Get a stock
// @Description Get a single stock by its symbol
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string true    "Ticker symbol"
// @Success 200 {object} entity.Security
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol} [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	stock, err := h.stockService.Get(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get stock")
	}
	return c.JSON(http.StatusOK, stock)
}

// GetChart godoc
// @Summary Get a price chart
// @Description Generate the observed and forecast price series for a stock
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string true    "Ticker symbol"
// @Param   past    query   int    false   "Observed days before today"
// @Param   future  query   int    false   "Forecast days after today"
// @Param   seed    query   int    false   "Random seed"
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/chart [get]
func (h *StockHandler) GetChart(c echo.Context) error {
	req := dto.ChartRequest{Symbol: c.Param("symbol")}

	var err error
	if req.PastDays, err = queryInt(c, "past"); err != nil {
		return badRequest(c, "Invalid past days")
	}
	if req.FutureDays, err = queryInt(c, "future"); err != nil {
		return badRequest(c, "Invalid future days")
	}
	if raw := c.QueryParam("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid seed")
		}
		req.Seed = &seed
	}

	chart, err := h.chartService.Chart(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate chart")
	}
	return c.JSON(http.StatusOK, chart)
}

// GetHistory godoc
// @Summary Get price history
// @Description Observed prices only, over a range of 1d, 1w, 1m, 3m or 1y
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string true    "Ticker symbol"
// @Param   range   query   string false   "History range" Enums(1d, 1w, 1m, 3m, 1y) default(1m)
// @Param   seed    query   int    false   "Random seed"
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/history [get]
func (h *StockHandler) GetHistory(c echo.Context) error {
	var seed *int64
	if raw := c.QueryParam("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid seed")
		}
		seed = &v
	}

	history, err := h.chartService.History(c.Request().Context(), c.Param("symbol"), c.QueryParam("range"), seed)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get price history")
	}
	return c.JSON(http.StatusOK, history)
}

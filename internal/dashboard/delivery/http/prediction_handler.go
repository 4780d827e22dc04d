package http

import (
	"net/http"

	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles HTTP requests for predictions.
type PredictionHandler struct {
	predictionService service.PredictionService
	logger            *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListPredictions)
	g.GET("/top", h.TopPredictions)
	g.GET("/:symbol", h.GetPrediction)
}

// ListPredictions godoc
// @Summary List predictions
// @Tags predictions
// @Produce  json
// @Success 200 {array} entity.Prediction
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions [get]
func (h *PredictionHandler) ListPredictions(c echo.Context) error {
	predictions, err := h.predictionService.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list predictions")
	}
	return c.JSON(http.StatusOK, predictions)
}

// TopPredictions godoc
// @Summary Top predictions
// @Description Highest confidence predictions first
// @Tags predictions
// @Produce  json
// @Param   limit  query    int false    "Maximum number of predictions" default(5)
// @Success 200 {array} entity.Prediction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions/top [get]
func (h *PredictionHandler) TopPredictions(c echo.Context) error {
	limit := common.DefaultTopPredictionLimit
	v, err := queryInt(c, "limit")
	if err != nil {
		return badRequest(c, "Invalid limit")
	}
	if v != nil {
		limit = *v
	}

	predictions, err := h.predictionService.Top(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get top predictions")
	}
	return c.JSON(http.StatusOK, predictions)
}

// GetPrediction godoc
// @Summary Get a prediction
// @Tags predictions
// @Produce  json
// @Param   symbol  path    string true    "Ticker symbol"
// @Success 200 {object} entity.Prediction
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions/{symbol} [get]
func (h *PredictionHandler) GetPrediction(c echo.Context) error {
	prediction, err := h.predictionService.Get(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get prediction")
	}
	return c.JSON(http.StatusOK, prediction)
}

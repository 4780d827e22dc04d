package http

import (
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Stock      *StockHandler
	Prediction *PredictionHandler
	News       *NewsHandler
	Market     *MarketHandler
	Dashboard  *DashboardHandler
}

// NewRouter builds the Echo server with all dashboard routes under /api/v1.
func NewRouter(h Handlers, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.CORS())

	apiV1 := e.Group("/api/v1")
	h.Stock.RegisterRoutes(apiV1.Group("/stocks"))
	h.Prediction.RegisterRoutes(apiV1.Group("/predictions"))
	h.News.RegisterRoutes(apiV1.Group("/news"))
	h.Market.RegisterRoutes(apiV1.Group("/market"))
	h.Dashboard.RegisterRoutes(apiV1.Group("/dashboard"))

	e.GET("/health", h.Dashboard.Health)
	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}

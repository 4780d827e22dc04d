package http

import (
	"net/http"
	"strconv"

	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for news articles.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListNews)
	g.GET("/feed", h.GetFeed)
	g.GET("/:id", h.GetNews)
}

// ListNews godoc
// @Summary List news
// @Description List news articles, newest first, optionally filtered by category
// @Tags news
// @Produce  json
// @Param   category  query    string false    "all, stocks, crypto, economy or general"
// @Success 200 {array} entity.NewsArticle
// @Failure 500 {object} dto.ErrorResponse
// @Router /news [get]
func (h *NewsHandler) ListNews(c echo.Context) error {
	articles, err := h.newsService.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list news")
	}
	return c.JSON(http.StatusOK, articles)
}

// GetFeed godoc
// @Summary News feed layout
// @Description Featured article, side column and latest articles for a category
// @Tags news
// @Produce  json
// @Param   category  query    string false    "all, stocks, crypto, economy or general"
// @Success 200 {object} dto.NewsFeed
// @Failure 500 {object} dto.ErrorResponse
// @Router /news/feed [get]
func (h *NewsHandler) GetFeed(c echo.Context) error {
	feed, err := h.newsService.Feed(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to build news feed")
	}
	return c.JSON(http.StatusOK, feed)
}

// GetNews godoc
// @Summary Get a news article
// @Tags news
// @Produce  json
// @Param   id  path    int true    "Article ID"
// @Success 200 {object} entity.NewsArticle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /news/{id} [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid news ID")
	}

	article, err := h.newsService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get news")
	}
	return c.JSON(http.StatusOK, article)
}

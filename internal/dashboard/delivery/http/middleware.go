package http

import (
	"context"
	"time"

	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger stores the request id in the request context and logs
// every completed request.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = req.Header.Get(echo.HeaderXRequestID)
			}
			ctx := context.WithValue(req.Context(), logger.RequestIDKey, id)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.InfoContext(ctx, "HTTP request",
				logger.StringField("method", req.Method),
				logger.StringField("path", c.Path()),
				logger.IntField("status", c.Response().Status),
				logger.Field("latency", time.Since(start)),
			)
			return nil
		}
	}
}

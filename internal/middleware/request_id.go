package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"smartShopper/business/recommendation"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a trace id to every request so the services can log with
// it. An incoming X-Request-ID is reused, otherwise one is generated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(requestIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommendation.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, traceID)

			return next(c)
		}
	}
}

package middleware

import (
	"context"

	"github.com/deppfellow/user-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the key the request-scoped logger is stored under, in
// both the Echo context and the request's Go context.
const LoggerKey = "logger"

// ContextEnhancer is a middleware helper that enriches the request
// context with a request-scoped logger carrying correlation fields
// (request_id, method, path, ip).
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that, for every request:
//  1. reads the request ID (set by the RequestID middleware)
//  2. builds a child logger with request fields
//  3. stores it in the Echo context and the Go request context, so
//     code that only sees a context.Context can log with correlation
//     fields too
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/users/:id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext did not run, it returns a no-op logger so callers
// never hit a nil pointer.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/user-service/internal/handler"
	appmiddleware "github.com/deppfellow/user-service/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters: request-id runs before the context
// enhancer so the request-scoped logger can carry the correlation id,
// and the request logger runs after both so its log line has them too.
func New(m *appmiddleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(m.Global.CORS())
	r.Use(appmiddleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())

	registerSystemRoutes(r, h)
	registerUserRoutes(r, h)

	return r
}

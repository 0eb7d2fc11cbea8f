package router

import (
	"github.com/deppfellow/user-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of
// business logic:
//
//  1. liveness probe (always 200)
//  2. store round-trip probe
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)
	r.GET("/db-health", h.Health.CheckDBHealth)
}

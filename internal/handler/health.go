package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/user-service/internal/middleware"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the system endpoints external systems use to
// verify the service is alive and its store is reachable.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared
// app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dbHealthTimeout bounds the store round-trip of the db-health probe.
const dbHealthTimeout = 5 * time.Second

// CheckHealth is the liveness probe. It involves no dependencies and
// always returns 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":          true,
		"ts":          time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	})
}

// CheckDBHealth executes a trivial round-trip against the store and
// returns 200 with {ok:true} on success. Failures surface through the
// global error handler as a 500.
func (h *HealthHandler) CheckDBHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "db_health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbHealthTimeout)
	defer cancel()

	start := time.Now()

	var ok int
	if err := h.server.DB.Pool.QueryRow(ctx, "SELECT 1").Scan(&ok); err != nil {
		logger.Error().
			Err(err).
			Dur("response_time", time.Since(start)).
			Msg("database health check failed")
		return err
	}

	logger.Debug().
		Dur("response_time", time.Since(start)).
		Msg("database health check passed")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok": ok == 1,
	})
}

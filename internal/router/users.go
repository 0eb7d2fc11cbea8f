package router

import (
	"net/http"

	"github.com/deppfellow/user-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerUserRoutes registers the users CRUD endpoints.
func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/users", handler.Handle(h.User.Handler, h.User.List, http.StatusOK))
	r.POST("/users", handler.Handle(h.User.Handler, h.User.Create, http.StatusCreated))
	r.GET("/users/:id", handler.Handle(h.User.Handler, h.User.Get, http.StatusOK))
	r.PUT("/users/:id", handler.Handle(h.User.Handler, h.User.Update, http.StatusOK))
	r.DELETE("/users/:id", handler.HandleNoContent(h.User.Handler, h.User.Delete, http.StatusNoContent))
}

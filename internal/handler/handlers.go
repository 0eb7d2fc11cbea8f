// Package handler is the first entry point for business logic after
// the router.
//
// It binds and validates requests and calls the appropriate service
// layer, acting as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health *HealthHandler // liveness and store round-trip probes
	User   *UserHandler   // users CRUD
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		User:   NewUserHandler(s, services.Users),
	}
}

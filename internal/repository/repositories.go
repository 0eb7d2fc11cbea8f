package repository

import (
	"github.com/deppfellow/user-service/internal/server"
)

// Repositories is a container for all repository instances.
//
// Keeping one container keeps wiring clean: routing/service setup
// passes a single object around instead of individual repos.
type Repositories struct {
	Users UserStore
}

// NewRepositories constructs the repository container backed by the
// application's database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB.Pool),
	}
}

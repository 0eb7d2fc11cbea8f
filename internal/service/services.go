package service

import (
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Users *UserService
}

// NewService constructs the service container on top of the
// repository container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users: NewUserService(s, repos.Users),
	}, nil
}

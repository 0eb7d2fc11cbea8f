package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/user-service/internal/config"
	"github.com/deppfellow/user-service/internal/database"
	"github.com/deppfellow/user-service/internal/handler"
	"github.com/deppfellow/user-service/internal/logger"
	"github.com/deppfellow/user-service/internal/middleware"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/router"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/service"
)

// shutdownTimeout is how long inflight requests get to finish after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// No logger yet; stderr is all we have.
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	s, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database schema")
	}

	repos := repository.NewRepositories(s)
	services, err := service.NewService(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	s.SetupHTTPServer(router.New(middlewares, handlers))

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// Package database contains the logic for establishing connections to
// the PostgreSQL database.
//
// It handles:
//   - resolving a unix socket directory from an ordered candidate list
//     (first existing path wins), falling back to TCP
//   - building a DSN from config
//   - creating a bounded pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog) in the local env
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/deppfellow/user-service/internal/config"
	loggerConfig "github.com/deppfellow/user-service/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger.
//
// Pool is the shared connection pool; the pool, not the handlers,
// serializes access to physical connections. log is used for
// lifecycle logs (connect/close).
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// resolveSocketDir returns the first existing unix socket directory
// from config: an explicitly configured path first, then the candidate
// list in order. Empty string means "use TCP".
func resolveSocketDir(cfg *config.DatabaseConfig) string {
	candidates := cfg.SocketCandidates
	if cfg.SocketPath != "" {
		candidates = append([]string{cfg.SocketPath}, candidates...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// buildDSN assembles the postgres connection string.
//
// When a socket directory resolves, the host query parameter carries
// the directory and the authority host is left empty; otherwise a
// normal host:port DSN is built. The password is URL-escaped so
// special characters cannot break the DSN structure.
func buildDSN(cfg *config.Config) string {
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	if socketDir := resolveSocketDir(&cfg.Database); socketDir != "" {
		return fmt.Sprintf("postgres://%s:%s@/%s?host=%s&sslmode=%s",
			cfg.Database.User,
			encodedPassword,
			cfg.Database.Name,
			url.QueryEscape(socketDir),
			cfg.Database.SSLMode,
		)
	}

	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// New creates a PostgreSQL connection pool.
//
// Behavior:
//   - Build DSN (unix socket when available, TCP otherwise)
//   - Parse DSN into pgxpool config and apply pool sizing from config
//   - In local env: attach a SQL tracelogger routed through zerolog
//   - Create the pool, ping it, and return Database
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	dsn := buildDSN(cfg)

	pgxPoolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	// Bounded pool shared across concurrent requests.
	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxConns)
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	// In local env, log SQL queries through zerolog. Too noisy for
	// anything but local.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		pgxPoolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	// Ping with a timeout so startup fails fast if the DB is down.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("connected to the database")

	return database, nil
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}

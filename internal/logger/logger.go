// Package logger configures the application's logging.
//
// It uses zerolog for structured logging and provides the adapters the
// database layer needs to route pgx query tracing through the same
// logger.
package logger

import (
	"os"

	"github.com/deppfellow/user-service/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New builds the application's main logger from config.
//
// Format "console" writes human-friendly output to stderr (local
// development); anything else writes JSON lines for log pipelines.
// Unknown level strings fall back to info.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", "user-service").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}

// NewPgxLogger builds the logger pgx query tracing writes to.
//
// It is a plain console logger tagged with a component field so SQL
// lines are easy to filter; SQL tracing is only enabled in the local
// environment, so the console format is always appropriate here.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level to the pgx
// tracelog level so query logging respects the configured verbosity.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the application-level category of a database error,
// mapped from the Postgres SQLSTATE class.
type Code int

const (
	// Other covers every SQLSTATE not explicitly classified below.
	Other Code = iota

	// UniqueViolation: SQLSTATE 23505, a duplicate value in a column
	// with a unique constraint (here: users.email).
	UniqueViolation

	// ForeignKeyViolation: SQLSTATE 23503.
	ForeignKeyViolation

	// NotNullViolation: SQLSTATE 23502.
	NotNullViolation

	// CheckViolation: SQLSTATE 23514.
	CheckViolation
)

// Severity mirrors the severity field reported by the server.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
	SeverityWarning
	SeverityOther
)

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE and constraint metadata so callers
// can build precise messages, and wraps the driver error for
// errors.Is/As chains.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlerr: %s (SQLSTATE %s)", e.Message, e.DatabaseCode)
}

// Unwrap exposes the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE string to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity maps the server severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	default:
		return SeverityOther
	}
}

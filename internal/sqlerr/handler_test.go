package sqlerr

import (
	"testing"

	"github.com/deppfellow/user-service/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	require.Error(t, err)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, 409, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
}

func TestHandleError_UniqueViolation_UnknownConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "something_weird",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, 409, httpErr.Status)
	assert.Equal(t, "A User with this identifier already exists", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "users",
		ColumnName: "first_name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "USER_REQUIRED", httpErr.Code)
	assert.Equal(t, "The First Name is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "first_name", httpErr.Errors[0].Field)
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)

	// Repositories annotate no-rows errors with the table name.
	wrapped := errors.Wrap(pgx.ErrNoRows, "fetching user table:users:")
	httpErr = asHTTPError(t, HandleError(wrapped))
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)
}

func TestHandleError_PassesThroughHTTPErrors(t *testing.T) {
	original := errs.NewConflictError("Email already exists", nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_UnknownErrorIsSanitized(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection refused")))
	assert.Equal(t, 500, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "connection refused")
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505"})
	assert.Equal(t, UniqueViolation, ErrCode(converted))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

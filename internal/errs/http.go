package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type every API failure is expressed as.
//
// It implements the error interface and is designed to be serialized
// directly to JSON by the global error handler.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "CONFLICT").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: optional list of per-field validation errors.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It matches on type only, not on Code/Status, so
// errors.Is(err, &HTTPError{}) answers "is this one of ours".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

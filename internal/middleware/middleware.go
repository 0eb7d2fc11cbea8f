// Package middleware contains the HTTP middleware stack: CORS,
// request logging, panic recovery, security headers, request-id
// correlation, the request-scoped logger, and the global error
// handler that converts every error into the JSON envelope.
package middleware

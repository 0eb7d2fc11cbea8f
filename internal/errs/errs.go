// Package errs defines the closed set of error types the API can
// surface to clients.
//
// Every failure a handler or repository produces is expressed as an
// *HTTPError carrying a status code, a machine-readable code, and a
// human-readable message, so the global error handler can translate
// any error into a consistent JSON envelope.
package errs

// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (like required
// fields) defined in struct tags and extracts validation errors into a
// format the client can understand. Email format uses a fixed
// expression rather than full RFC validation, matching the API
// contract.
package validation

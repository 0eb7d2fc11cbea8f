// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into the application's error taxonomy with user-friendly messages
// (e.g. a unique violation on users.email becomes a 409 Conflict).
package sqlerr

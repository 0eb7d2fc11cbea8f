package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/user-service/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is the canonical record shape returned by every store operation.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFields carries the writable fields of a user record. Callers are
// expected to pass trimmed, validated values; the store only enforces
// the constraints the schema enforces (email uniqueness, non-null).
type UserFields struct {
	FirstName string
	LastName  string
	Email     string
}

// ListUsersParams is the normalized query for ListFiltered. SortColumn
// must come from SortColumns; anything else falls back to "id" at the
// SQL-building site.
type ListUsersParams struct {
	Search        string
	SortColumn    string
	SortAscending bool
	Offset        int
	Limit         int
}

// SortColumns is the allow-list of columns ListFiltered may order by.
// Only these names are ever interpolated into ORDER BY.
var SortColumns = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

// UserStore is the store abstraction handlers and services depend on,
// so the relational and in-memory implementations are interchangeable.
type UserStore interface {
	// List returns all records, most-recently-created first.
	List(ctx context.Context) ([]User, error)

	// ListFiltered returns the records matching params' search text,
	// ordered and windowed per params, plus the total match count
	// ignoring the window.
	ListFiltered(ctx context.Context, params ListUsersParams) ([]User, int, error)

	// Get returns the record with the given id, or NotFound.
	Get(ctx context.Context, id int64) (*User, error)

	// Create inserts a record and returns it with assigned id and
	// timestamps. Duplicate email fails with Conflict.
	Create(ctx context.Context, fields UserFields) (*User, error)

	// Update overwrites the writable fields of the record with the
	// given id and returns it with a refreshed updated_at. Fails with
	// NotFound for an absent id and Conflict for a duplicate email.
	Update(ctx context.Context, id int64, fields UserFields) (*User, error)

	// Delete removes the record permanently, or fails with NotFound.
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the pgx-backed UserStore.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository on the shared pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, first_name, last_name, email, created_at, updated_at"

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]User, error) {
	defer rows.Close()

	// Initialized so an empty result serializes as [], not null.
	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return collectUsers(rows)
}

func (r *UserRepository) ListFiltered(ctx context.Context, params ListUsersParams) ([]User, int, error) {
	where := ""
	args := []any{}
	if params.Search != "" {
		where = "WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1"
		args = append(args, "%"+params.Search+"%")
	}

	// Total match count for pagination UIs, ignoring the window.
	var total int
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM users %s", where), args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	sortColumn := params.SortColumn
	if !SortColumns[sortColumn] {
		sortColumn = "id"
	}
	sortDir := "DESC"
	if params.SortAscending {
		sortDir = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM users %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		userColumns, where, sortColumn, sortDir, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("User not found", nil)
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, fields UserFields) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		"INSERT INTO users (first_name, last_name, email) VALUES ($1, $2, $3) RETURNING "+userColumns,
		fields.FirstName, fields.LastName, fields.Email,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.NewConflictError("Email already exists", nil)
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, fields UserFields) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		"UPDATE users SET first_name = $1, last_name = $2, email = $3, updated_at = now() WHERE id = $4 RETURNING "+userColumns,
		fields.FirstName, fields.LastName, fields.Email, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("User not found", nil)
		}
		if isUniqueViolation(err) {
			return nil, errs.NewConflictError("Email already exists", nil)
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("User not found", nil)
	}
	return nil
}

// Ping verifies store connectivity with a trivial round-trip.
func (r *UserRepository) Ping(ctx context.Context) error {
	var ok int
	return r.pool.QueryRow(ctx, "SELECT 1").Scan(&ok)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The only unique constraint on users is
// the email column.
func isUniqueViolation(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

package service

import (
	"context"
	"strings"

	"github.com/deppfellow/user-service/internal/errs"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/validation"
)

// CreateUserInput carries the fields of a create request, untrimmed.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateUserInput carries a partial update. Nil fields keep the
// current value; set fields replace it.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserService implements the user business rules on top of a UserStore.
type UserService struct {
	server *server.Server
	store  repository.UserStore
}

// NewUserService constructs a UserService. The store is injected so
// the relational and in-memory implementations are interchangeable.
func NewUserService(s *server.Server, store repository.UserStore) *UserService {
	return &UserService{
		server: s,
		store:  store,
	}
}

// List returns the users matching the raw query, normalized per
// DefaultListRules, plus the total match count ignoring the window.
func (s *UserService) List(ctx context.Context, query ListQuery) ([]repository.User, int, error) {
	params := NormalizeListQuery(query, DefaultListRules)
	return s.store.ListFiltered(ctx, params)
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*repository.User, error) {
	return s.store.Get(ctx, id)
}

// Create validates and inserts a new user.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*repository.User, error) {
	fields := repository.UserFields{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
	}
	if err := validateUserFields(fields); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, fields)
}

// Update merges the provided fields over the current record,
// re-validates the merged result, and persists it. Fields absent from
// the patch keep their current values.
func (s *UserService) Update(ctx context.Context, id int64, patch UpdateUserInput) (*repository.User, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := repository.UserFields{
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Email:     current.Email,
	}
	if patch.FirstName != nil {
		fields.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		fields.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Email != nil {
		fields.Email = strings.TrimSpace(*patch.Email)
	}

	if err := validateUserFields(fields); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, fields)
}

// Delete removes a user permanently.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// validateUserFields enforces the record invariants on trimmed fields:
// no blank values, and the email matches the contractual format.
func validateUserFields(fields repository.UserFields) error {
	var fieldErrors []errs.FieldError
	if fields.FirstName == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "first_name", Error: "is required"})
	}
	if fields.LastName == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "last_name", Error: "is required"})
	}
	if fields.Email == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "email", Error: "is required"})
	}
	if len(fieldErrors) > 0 {
		return errs.NewBadRequestError("first_name, last_name and email are required", nil, fieldErrors)
	}

	if !validation.IsValidEmail(fields.Email) {
		return errs.NewBadRequestError("Invalid email", nil, []errs.FieldError{
			{Field: "email", Error: "must be a valid email address"},
		})
	}
	return nil
}

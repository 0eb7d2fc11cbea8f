package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/deppfellow/user-service/internal/errs"
)

// MemoryUserRepository is an in-process UserStore.
//
// It mirrors the relational implementation's semantics: monotonic ids
// that are never reused after deletion, email uniqueness, and the same
// ordering/filter/window behavior. An RWMutex makes it safe under
// concurrent handlers, which also makes it the test double for the
// service and handler layers.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int64
}

// NewMemoryUserRepository constructs an empty in-memory store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1}
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Insertion order is id order, so newest-first is a reversal.
	users := make([]User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		users = append(users, r.users[i])
	}
	return users, nil
}

func (r *MemoryUserRepository) ListFiltered(ctx context.Context, params ListUsersParams) ([]User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(params.Search)

	matched := []User{}
	for _, u := range r.users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			matched = append(matched, u)
		}
	}
	total := len(matched)

	sortColumn := params.SortColumn
	if !SortColumns[sortColumn] {
		sortColumn = "id"
	}
	sort.SliceStable(matched, func(i, j int) bool {
		less := userLess(matched[i], matched[j], sortColumn)
		if params.SortAscending {
			return less
		}
		return userLess(matched[j], matched[i], sortColumn)
	})

	// Window after sorting, exactly like LIMIT/OFFSET.
	if params.Offset >= total {
		return []User{}, total, nil
	}
	end := params.Offset + params.Limit
	if end > total {
		end = total
	}
	page := make([]User, end-params.Offset)
	copy(page, matched[params.Offset:end])
	return page, total, nil
}

func (r *MemoryUserRepository) Get(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		u := r.users[i]
		return &u, nil
	}
	return nil, errs.NewNotFoundError("User not found", nil)
}

func (r *MemoryUserRepository) Create(ctx context.Context, fields UserFields) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == fields.Email {
			return nil, errs.NewConflictError("Email already exists", nil)
		}
	}

	now := time.Now().UTC()
	u := User{
		ID:        r.nextID,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// The counter only moves forward, so deleted ids are never reused.
	r.nextID++
	r.users = append(r.users, u)
	return &u, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, id int64, fields UserFields) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, errs.NewNotFoundError("User not found", nil)
	}

	for _, u := range r.users {
		if u.ID != id && u.Email == fields.Email {
			return nil, errs.NewConflictError("Email already exists", nil)
		}
	}

	r.users[i].FirstName = fields.FirstName
	r.users[i].LastName = fields.LastName
	r.users[i].Email = fields.Email
	r.users[i].UpdatedAt = time.Now().UTC()

	u := r.users[i]
	return &u, nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errs.NewNotFoundError("User not found", nil)
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// indexOf returns the slice index of id, or -1. Callers hold the lock.
func (r *MemoryUserRepository) indexOf(id int64) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// userLess compares two users on the given allow-listed column.
func userLess(a, b User, column string) bool {
	switch column {
	case "first_name":
		return a.FirstName < b.FirstName
	case "last_name":
		return a.LastName < b.LastName
	case "email":
		return a.Email < b.Email
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return a.ID < b.ID
	}
}

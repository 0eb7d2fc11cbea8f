package service_test

import (
	"context"
	"testing"

	"github.com/deppfellow/user-service/internal/config"
	"github.com/deppfellow/user-service/internal/errs"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service.UserService {
	t.Helper()
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
	return service.NewUserService(s, repository.NewMemoryUserRepository())
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "expected *errs.HTTPError, got %T", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestUserService_Create(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "  Ada ",
		LastName:  "Lovelace",
		Email:     " ada@example.com ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Ada", u.FirstName, "fields are trimmed before persisting")
	assert.Equal(t, "ada@example.com", u.Email)
	assert.True(t, u.CreatedAt.Equal(u.UpdatedAt), "timestamps match on insert")
}

func TestUserService_Create_BlankFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "   ",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	httpErr := requireStatus(t, err, 400)
	assert.Equal(t, "first_name, last_name and email are required", httpErr.Message)
}

func TestUserService_Create_InvalidEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, email := range []string{"ada", "ada@example", "ada @example.com", "@example.com"} {
		_, err := svc.Create(ctx, service.CreateUserInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     email,
		})
		httpErr := requireStatus(t, err, 400)
		assert.Equal(t, "Invalid email", httpErr.Message)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, service.CreateUserInput{
		FirstName: "Other", LastName: "Person", Email: "ada@example.com",
	})
	httpErr := requireStatus(t, err, 409)
	assert.Equal(t, "Email already exists", httpErr.Message)

	// Uniqueness is a case-sensitive exact match.
	_, err = svc.Create(ctx, service.CreateUserInput{
		FirstName: "Other", LastName: "Person", Email: "ADA@example.com",
	})
	require.NoError(t, err)
}

func TestUserService_Get_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(ctx, 999)
	requireStatus(t, err, 404)
}

func TestUserService_Update_PartialMerge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	email := "new@x.com"
	updated, err := svc.Update(ctx, created.ID, service.UpdateUserInput{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "Ada", updated.FirstName, "absent fields keep current values")
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updated_at refreshes on update")
}

func TestUserService_Update_ValidatesMergedRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	blank := "   "
	_, err = svc.Update(ctx, created.ID, service.UpdateUserInput{FirstName: &blank})
	requireStatus(t, err, 400)

	bad := "not-an-email"
	_, err = svc.Update(ctx, created.ID, service.UpdateUserInput{Email: &bad})
	httpErr := requireStatus(t, err, 400)
	assert.Equal(t, "Invalid email", httpErr.Message)
}

func TestUserService_Update_Conflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	bob, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Bob", LastName: "Byron", Email: "bob@example.com",
	})
	require.NoError(t, err)

	taken := "ada@example.com"
	_, err = svc.Update(ctx, bob.ID, service.UpdateUserInput{Email: &taken})
	requireStatus(t, err, 409)

	// Re-submitting the current email is not a conflict.
	same := "bob@example.com"
	_, err = svc.Update(ctx, bob.ID, service.UpdateUserInput{Email: &same})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 999, service.UpdateUserInput{Email: &same})
	requireStatus(t, err, 404)
}

func TestUserService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	// Deleting twice in a row fails the second time.
	requireStatus(t, svc.Delete(ctx, created.ID), 404)
	requireStatus(t, svc.Delete(ctx, 999), 404)

	_, err = svc.Get(ctx, created.ID)
	requireStatus(t, err, 404)
}

func TestUserService_IDsNeverReused(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, first.ID))

	second, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Bob", LastName: "Byron", Email: "bob@example.com",
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestUserService_List_Search(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.CreateUserInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.CreateUserInput{
		FirstName: "Bob", LastName: "Byron", Email: "bob@example.com",
	})
	require.NoError(t, err)

	users, total, err := svc.List(ctx, service.ListQuery{Q: "ADA"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "ada@example.com", users[0].Email)

	// Empty search matches all, newest first by default.
	users, total, err = svc.List(ctx, service.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, users, 2)
	assert.Equal(t, "bob@example.com", users[0].Email)
}

func TestUserService_List_WindowAndTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, email := range emails {
		_, err := svc.Create(ctx, service.CreateUserInput{
			FirstName: "First", LastName: "Last", Email: email,
		})
		require.NoError(t, err)
	}

	users, total, err := svc.List(ctx, service.ListQuery{
		Sort: "email", Order: "asc", Skip: "1", Take: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "total ignores the pagination window")
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)
}

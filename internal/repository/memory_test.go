package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T, r *MemoryUserRepository) []User {
	t.Helper()
	ctx := context.Background()

	seed := []UserFields{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		{FirstName: "Charles", LastName: "Babbage", Email: "charles@example.com"},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
	}
	users := make([]User, 0, len(seed))
	for _, fields := range seed {
		u, err := r.Create(ctx, fields)
		require.NoError(t, err)
		users = append(users, *u)
	}
	return users
}

func TestMemoryUserRepository_List_NewestFirst(t *testing.T) {
	r := NewMemoryUserRepository()
	seedUsers(t, r)

	users, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int64(3), users[0].ID)
	assert.Equal(t, int64(1), users[2].ID)
}

func TestMemoryUserRepository_ListFiltered_Search(t *testing.T) {
	r := NewMemoryUserRepository()
	seedUsers(t, r)

	// Matches any of the three columns, case-insensitively.
	users, total, err := r.ListFiltered(context.Background(), ListUsersParams{
		Search: "HOPPER", Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "grace@example.com", users[0].Email)

	users, total, err = r.ListFiltered(context.Background(), ListUsersParams{
		Search: "nobody", Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, users, "no matches still serializes as an empty array")
	assert.Empty(t, users)
}

func TestMemoryUserRepository_ListFiltered_SortColumns(t *testing.T) {
	r := NewMemoryUserRepository()
	seedUsers(t, r)
	ctx := context.Background()

	users, _, err := r.ListFiltered(ctx, ListUsersParams{
		SortColumn: "last_name", SortAscending: true, Limit: 50,
	})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Babbage", users[0].LastName)
	assert.Equal(t, "Lovelace", users[2].LastName)

	users, _, err = r.ListFiltered(ctx, ListUsersParams{
		SortColumn: "email", SortAscending: false, Limit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", users[0].Email)
	assert.Equal(t, "ada@example.com", users[2].Email)
}

func TestMemoryUserRepository_ListFiltered_Window(t *testing.T) {
	r := NewMemoryUserRepository()
	seedUsers(t, r)
	ctx := context.Background()

	users, total, err := r.ListFiltered(ctx, ListUsersParams{
		SortColumn: "id", SortAscending: true, Offset: 1, Limit: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "total counts all matches, not the page")
	require.Len(t, users, 1)
	assert.Equal(t, int64(2), users[0].ID)

	// Offset past the end yields an empty page, not an error.
	users, total, err = r.ListFiltered(ctx, ListUsersParams{
		SortColumn: "id", SortAscending: true, Offset: 10, Limit: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, users)
}

func TestMemoryUserRepository_DeleteAndGet(t *testing.T) {
	r := NewMemoryUserRepository()
	seeded := seedUsers(t, r)
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, seeded[1].ID))

	_, err := r.Get(ctx, seeded[1].ID)
	require.Error(t, err)

	require.Error(t, r.Delete(ctx, seeded[1].ID), "second delete fails")

	users, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

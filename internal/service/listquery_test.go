package service

import (
	"testing"

	"github.com/deppfellow/user-service/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeListQuery_Defaults(t *testing.T) {
	params := NormalizeListQuery(ListQuery{}, DefaultListRules)

	assert.Equal(t, repository.ListUsersParams{
		Search:        "",
		SortColumn:    "id",
		SortAscending: false,
		Offset:        0,
		Limit:         50,
	}, params)
}

func TestNormalizeListQuery_Limit(t *testing.T) {
	tests := []struct {
		name string
		take string
		want int
	}{
		{"within range", "25", 25},
		{"above max is clamped", "1000", 100},
		{"exactly max", "100", 100},
		{"zero falls back", "0", 50},
		{"negative falls back", "-5", 50},
		{"non-numeric falls back", "abc", 50},
		{"empty falls back", "", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := NormalizeListQuery(ListQuery{Take: tt.take}, DefaultListRules)
			assert.Equal(t, tt.want, params.Limit)
		})
	}
}

func TestNormalizeListQuery_Offset(t *testing.T) {
	tests := []struct {
		name string
		skip string
		want int
	}{
		{"within range", "30", 30},
		{"negative falls back", "-1", 0},
		{"non-numeric falls back", "x", 0},
		{"empty falls back", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := NormalizeListQuery(ListQuery{Skip: tt.skip}, DefaultListRules)
			assert.Equal(t, tt.want, params.Offset)
		})
	}
}

func TestNormalizeListQuery_Sort(t *testing.T) {
	params := NormalizeListQuery(ListQuery{Sort: "email", Order: "asc"}, DefaultListRules)
	assert.Equal(t, "email", params.SortColumn)
	assert.True(t, params.SortAscending)

	// Case-insensitive "asc".
	params = NormalizeListQuery(ListQuery{Order: "ASC"}, DefaultListRules)
	assert.True(t, params.SortAscending)

	// Columns outside the allow-list fall back to id.
	params = NormalizeListQuery(ListQuery{Sort: "password; DROP TABLE users"}, DefaultListRules)
	assert.Equal(t, "id", params.SortColumn)

	// Unrecognized order values silently fall back to descending.
	params = NormalizeListQuery(ListQuery{Order: "sideways"}, DefaultListRules)
	assert.False(t, params.SortAscending)
}

func TestNormalizeListQuery_SearchTrimmed(t *testing.T) {
	params := NormalizeListQuery(ListQuery{Q: "  ada  "}, DefaultListRules)
	assert.Equal(t, "ada", params.Search)
}

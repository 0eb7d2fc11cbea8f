package service

import (
	"strconv"
	"strings"

	"github.com/deppfellow/user-service/internal/repository"
)

// ListQuery carries the raw list query parameters as the client sent
// them. Skip and Take stay strings so non-numeric values fall back to
// defaults instead of failing the bind.
type ListQuery struct {
	Q     string
	Sort  string
	Order string
	Skip  string
	Take  string
}

// ListRules is the explicit configuration NormalizeListQuery applies:
// which columns may be sorted on and how the pagination window is
// defaulted and clamped.
type ListRules struct {
	SortColumns       map[string]bool
	DefaultSortColumn string
	DefaultLimit      int
	MaxLimit          int
}

// DefaultListRules matches the API contract: sortable columns are the
// user columns, pages default to 50 records and are capped at 100.
var DefaultListRules = ListRules{
	SortColumns:       repository.SortColumns,
	DefaultSortColumn: "id",
	DefaultLimit:      50,
	MaxLimit:          100,
}

// NormalizeListQuery turns raw query parameters into store parameters.
//
// Rules:
//   - search text is trimmed; empty matches all
//   - sort columns outside the allow-list fall back to the default
//   - only the exact (case-insensitive) value "asc" sorts ascending;
//     anything else silently falls back to descending
//   - skip below 0 or non-numeric falls back to 0
//   - take of 0 or below, or non-numeric, falls back to the default
//     limit; values above MaxLimit are clamped to it
//
// It is a pure function so the clamping behavior is unit-testable in
// isolation.
func NormalizeListQuery(q ListQuery, rules ListRules) repository.ListUsersParams {
	sortColumn := q.Sort
	if !rules.SortColumns[sortColumn] {
		sortColumn = rules.DefaultSortColumn
	}

	offset, err := strconv.Atoi(q.Skip)
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err := strconv.Atoi(q.Take)
	if err != nil || limit <= 0 {
		limit = rules.DefaultLimit
	}
	if limit > rules.MaxLimit {
		limit = rules.MaxLimit
	}

	return repository.ListUsersParams{
		Search:        strings.TrimSpace(q.Q),
		SortColumn:    sortColumn,
		SortAscending: strings.EqualFold(strings.TrimSpace(q.Order), "asc"),
		Offset:        offset,
		Limit:         limit,
	}
}

// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book"
)

/*
TestNormalize_Defaults checks the criteria produced for an empty request.
*/
func TestNormalize_Defaults(t *testing.T) {
	criteria := book.Normalize(book.RawParams{})

	assert.Equal(t, book.FilterCriteria{
		SortField:     book.SortCreatedAt,
		SortDirection: book.SortDesc,
		Page:          1,
		PageSize:      12,
	}, criteria)
}

/*
TestNormalize_Paging covers the page and limit clamping rules.
*/
func TestNormalize_Paging(t *testing.T) {
	tests := []struct {
		name         string
		raw          book.RawParams
		wantPage     int
		wantPageSize int
	}{
		{"explicit_values", book.RawParams{Page: "3", Limit: "20"}, 3, 20},
		{"page_zero", book.RawParams{Page: "0"}, 1, 12},
		{"page_negative", book.RawParams{Page: "-4"}, 1, 12},
		{"page_garbage", book.RawParams{Page: "two"}, 1, 12},
		{"page_huge", book.RawParams{Page: "99999999999"}, book.MaxPage, 12},
		{"limit_zero", book.RawParams{Limit: "0"}, 1, 12},
		{"limit_above_max", book.RawParams{Limit: "101"}, 1, 12},
		{"limit_max", book.RawParams{Limit: "100"}, 1, 100},
		{"page_size_alias", book.RawParams{PageSize: "30"}, 1, 30},
		{"limit_wins_over_alias", book.RawParams{Limit: "5", PageSize: "30"}, 1, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			criteria := book.Normalize(tc.raw)
			assert.Equal(t, tc.wantPage, criteria.Page)
			assert.Equal(t, tc.wantPageSize, criteria.PageSize)
		})
	}
}

/*
TestNormalize_SortAllowList asserts that anything outside the allow-list
resolves to created_at.
*/
func TestNormalize_SortAllowList(t *testing.T) {
	hostile := []string{
		"", "id", "password_hash", "Title", "price DESC", "created_at; DROP TABLE books",
		"1", "(SELECT 1)", "rating,title", " title",
	}
	for _, sortBy := range hostile {
		t.Run(sortBy, func(t *testing.T) {
			assert.Equal(t, book.SortCreatedAt, book.Normalize(book.RawParams{SortBy: sortBy}).SortField)
		})
	}

	allowed := []book.SortField{
		book.SortTitle, book.SortAuthor, book.SortPrice,
		book.SortRating, book.SortCreatedAt, book.SortPublishedYear,
	}
	for _, field := range allowed {
		t.Run(string(field), func(t *testing.T) {
			assert.Equal(t, field, book.Normalize(book.RawParams{SortBy: string(field)}).SortField)
		})
	}
}

func TestNormalize_SortOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want book.SortDirection
	}{
		{"asc", book.SortAsc},
		{"ASC", book.SortAsc},
		{"Desc", book.SortDesc},
		{"", book.SortDesc},
		{"sideways", book.SortDesc},
		{"ASC; --", book.SortDesc},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, book.Normalize(book.RawParams{SortOrder: tc.raw}).SortDirection)
		})
	}
}

/*
TestNormalize_PriceRange covers parsing and the min/max swap.
*/
func TestNormalize_PriceRange(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		max     string
		wantMin *float64
		wantMax *float64
	}{
		{"both_valid", "5", "20.5", ptr(5.0), ptr(20.5)},
		{"inverted_is_swapped", "50", "10", ptr(10.0), ptr(50.0)},
		{"negative_dropped", "-1", "10", nil, ptr(10.0)},
		{"garbage_dropped", "cheap", "abc", nil, nil},
		{"nan_dropped", "NaN", "Inf", nil, nil},
		{"zero_kept", "0", "", ptr(0.0), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			criteria := book.Normalize(book.RawParams{MinPrice: tc.min, MaxPrice: tc.max})
			assert.Equal(t, tc.wantMin, criteria.MinPrice)
			assert.Equal(t, tc.wantMax, criteria.MaxPrice)
			if criteria.MinPrice != nil && criteria.MaxPrice != nil {
				assert.LessOrEqual(t, *criteria.MinPrice, *criteria.MaxPrice)
			}
		})
	}
}

func TestNormalize_Filters(t *testing.T) {
	tests := []struct {
		name  string
		raw   book.RawParams
		check func(t *testing.T, c book.FilterCriteria)
	}{
		{"category_kept", book.RawParams{Category: "Mathematics"}, func(t *testing.T, c book.FilterCriteria) {
			require.NotNil(t, c.CategoryName)
			assert.Equal(t, "Mathematics", *c.CategoryName)
		}},
		{"category_all_sentinel", book.RawParams{Category: "all"}, func(t *testing.T, c book.FilterCriteria) {
			assert.Nil(t, c.CategoryName)
		}},
		{"condition_exact", book.RawParams{Condition: "Used"}, func(t *testing.T, c book.FilterCriteria) {
			require.NotNil(t, c.Condition)
			assert.Equal(t, book.ConditionUsed, *c.Condition)
		}},
		{"condition_case_sensitive", book.RawParams{Condition: "used"}, func(t *testing.T, c book.FilterCriteria) {
			assert.Nil(t, c.Condition)
		}},
		{"language_kept", book.RawParams{Language: "Sinhala"}, func(t *testing.T, c book.FilterCriteria) {
			require.NotNil(t, c.Language)
			assert.Equal(t, "Sinhala", *c.Language)
		}},
		{"availability_one", book.RawParams{Availability: "1"}, func(t *testing.T, c book.FilterCriteria) {
			require.NotNil(t, c.Availability)
			assert.True(t, *c.Availability)
		}},
		{"availability_false_mixed_case", book.RawParams{Availability: "FaLsE"}, func(t *testing.T, c book.FilterCriteria) {
			require.NotNil(t, c.Availability)
			assert.False(t, *c.Availability)
		}},
		{"availability_garbage_unfiltered", book.RawParams{Availability: "yes"}, func(t *testing.T, c book.FilterCriteria) {
			assert.Nil(t, c.Availability)
		}},
		{"search_passed_through", book.RawParams{Search: "  100% _Gatsby_ "}, func(t *testing.T, c book.FilterCriteria) {
			require.NotNil(t, c.SearchTerm)
			assert.Equal(t, "  100% _Gatsby_ ", *c.SearchTerm)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, book.Normalize(tc.raw))
		})
	}
}

/*
TestNormalize_Total feeds hostile query strings through the full read-side
pipeline: the result must always build.
*/
func TestNormalize_Total(t *testing.T) {
	queries := []string{
		"",
		"page=-1&limit=abc&minPrice=NaN&maxPrice=-Inf",
		"sortBy=price%3B+DROP+TABLE+books&sortOrder=%27",
		"category=%27%3B+DROP+TABLE+books%3B+--&search=%25%25%25",
		"availability=maybe&condition=MINT&language=",
		"page=1e9&limit=1e3&minPrice=1e400",
		"search=%00&category=%FF&language=a%00b",
	}

	for _, raw := range queries {
		t.Run(raw, func(t *testing.T) {
			values, err := url.ParseQuery(raw)
			require.NoError(t, err)

			criteria := book.Normalize(book.RawParamsFromQuery(values))
			_, err = book.BuildQuery(criteria)
			assert.NoError(t, err)
		})
	}
}

/*
TestNormalize_UnstorableText drops text filters PostgreSQL would reject as
parameters, so they degrade to "no filter" instead of a storage error.
*/
func TestNormalize_UnstorableText(t *testing.T) {
	tests := []struct {
		name string
		raw  book.RawParams
	}{
		{"invalid_utf8_search", book.RawParams{Search: "\xff\xfe"}},
		{"nul_search", book.RawParams{Search: "\x00"}},
		{"invalid_utf8_category", book.RawParams{Category: "\xff"}},
		{"nul_language", book.RawParams{Language: "a\x00b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			criteria := book.Normalize(tc.raw)
			assert.Nil(t, criteria.SearchTerm)
			assert.Nil(t, criteria.CategoryName)
			assert.Nil(t, criteria.Language)
		})
	}

	criteria := book.Normalize(book.RawParams{Search: "Čapek", Language: "සිංහල"})
	require.NotNil(t, criteria.SearchTerm)
	assert.Equal(t, "Čapek", *criteria.SearchTerm)
	require.NotNil(t, criteria.Language)
	assert.Equal(t, "සිංහල", *criteria.Language)
}

func TestRawParamsFromQuery_FirstValueWins(t *testing.T) {
	values := url.Values{"category": {"History", "Mathematics"}, "pageSize": {"7"}}
	raw := book.RawParamsFromQuery(values)

	assert.Equal(t, "History", raw.Category)
	assert.Equal(t, "7", raw.PageSize)
}

func ptr[T any](v T) *T { return &v }

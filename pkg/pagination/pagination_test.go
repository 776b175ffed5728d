// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pagination"
)

/*
TestNewMeta_Consistency checks the page arithmetic for a grid of totals and page sizes.
*/
func TestNewMeta_Consistency(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for limit := 1; limit <= 13; limit++ {
			wantPages := total / limit
			if total%limit != 0 {
				wantPages++
			}

			for page := 1; page <= wantPages; page++ {
				meta := pagination.NewMeta(page, limit, total)

				assert.Equal(t, wantPages, meta.TotalPages)
				assert.Equal(t, page < wantPages, meta.HasNextPage)
				assert.Equal(t, page > 1, meta.HasPrevPage)
				assert.Equal(t, total, meta.TotalItems)
				assert.Equal(t, limit, meta.ItemsPerPage)
			}
		}
	}
}

/*
TestNewMeta_Empty verifies the metadata of an empty result set.
*/
func TestNewMeta_Empty(t *testing.T) {
	meta := pagination.NewMeta(1, 12, 0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}

/*
TestParse covers the clamping rules for page and limit.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 12},
		{"valid", "3", "24", 3, 24},
		{"non_numeric", "abc", "x", 1, 12},
		{"zero_page", "0", "10", 1, 10},
		{"negative_page", "-4", "10", 1, 10},
		{"limit_at_max", "1", "100", 1, 100},
		{"limit_over_max", "1", "101", 1, 12},
		{"zero_limit", "2", "0", 2, 12},
		{"float_page", "2.5", "10", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.Parse(tt.page, tt.limit, pagination.DefaultLimit)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset checks the OFFSET derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 24, pagination.Params{Page: 3, Limit: 12}.Offset())
}

/*
TestNewResult_NilItems verifies nil slices are normalised to empty ones.
*/
func TestNewResult_NilItems(t *testing.T) {
	result := pagination.NewResult[string](nil, 2, 10, 5)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.True(t, result.Meta.HasPrevPage)
	assert.False(t, result.Meta.HasNextPage)
}

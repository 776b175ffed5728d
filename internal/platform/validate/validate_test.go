// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Calculus: Early Transcendentals", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("title", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, "title", ae.Details[0].Field)
		})
	}
}

/*
TestValidator_Email checks that only bare addresses are accepted.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"plain_address", "reader@pageturn.app", true},
		{"missing_at", "reader.pageturn.app", false},
		{"display_name_form", "Reader <reader@pageturn.app>", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := (&validate.Validator{}).Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

func TestValidator_FloatRange(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		hasError bool
	}{
		{"lower_bound", 0, false},
		{"upper_bound", 5, false},
		{"below", -0.1, true},
		{"above", 5.01, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := (&validate.Validator{}).FloatRange("rating", tt.value, 0, 5)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

func TestValidator_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"ascii", "Calculus", false},
		{"multibyte", "සිංහල ව්‍යාකරණ", false},
		{"empty", "", false},
		{"nul_byte", "Calc\x00ulus", true},
		{"invalid_utf8", "\xff\xfe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := (&validate.Validator{}).PlainText("title", tt.value)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain verifies that every failing rule is reported in order.
*/
func TestValidator_Chain(t *testing.T) {
	err := (&validate.Validator{}).
		Required("title", "").
		MaxLen("author", "abcdef", 3).
		Range("published_year", 1200, 1400, 2100).
		OneOf("condition", "Mint", "New", "Used", "Fair", "Poor").
		Slug("slug", "Not A Slug").
		Custom("price", true, "Must not be negative").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)

	var fields []string
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.Equal(t, []string{"title", "author", "published_year", "condition", "slug", "price"}, fields)
}

func TestErrInvalidJSON(t *testing.T) {
	assert.NotSame(t, validate.ErrInvalidJSON(), validate.ErrInvalidJSON())
	assert.Equal(t, "VALIDATION_ERROR", validate.ErrInvalidJSON().Code)
}

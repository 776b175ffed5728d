// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NavodCaldera/online-bookstore-sub000/pkg/convert"
)

func TestBool(t *testing.T) {
	tests := []struct {
		input  string
		want   bool
		wantOK bool
	}{
		{"1", true, true},
		{"0", false, true},
		{"true", true, true},
		{"FALSE", false, true},
		{" True ", true, true},
		{"yes", false, false},
		{"", false, false},
		{"2", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := convert.Bool(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"integer", "12", 12, true},
		{"decimal", "9.99", 9.99, true},
		{"negative", "-3", -3, true},
		{"empty", "", 0, false},
		{"garbage", "cheap", 0, false},
		{"nan", "NaN", 0, false},
		{"infinity", "+Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convert.Float(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToIntD(t *testing.T) {
	assert.Equal(t, 8, convert.ToIntD("", 8))
	assert.Equal(t, 8, convert.ToIntD("eight", 8))
	assert.Equal(t, 3, convert.ToIntD("3", 8))
}

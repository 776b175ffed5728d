// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/ctxutil"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/request"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestInt64Param(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not_a_number", "abc", 0, true},
		{"injection_attempt", "1 OR 1=1", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tc.raw)
			id, err := request.Int64Param(r, "id", "Book")
			if tc.wantErr {
				assert.True(t, apperr.Is(err, "NOT_FOUND"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid_body", func(t *testing.T) {
		var target payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co"}`))
		require.NoError(t, request.DecodeJSON(httptest.NewRecorder(), r, &target))
		assert.Equal(t, "a@b.co", target.Email)
	})

	t.Run("unknown_field", func(t *testing.T) {
		var target payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","admin":true}`))
		assert.True(t, apperr.Is(request.DecodeJSON(httptest.NewRecorder(), r, &target), "VALIDATION_ERROR"))
	})

	t.Run("malformed_body", func(t *testing.T) {
		var target payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		assert.True(t, apperr.Is(request.DecodeJSON(httptest.NewRecorder(), r, &target), "VALIDATION_ERROR"))
	})
}

func TestRequiredClaims(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := request.RequiredClaims(r)
	assert.True(t, apperr.Is(err, "UNAUTHORIZED"))

	claims := &sec.AuthClaims{UserID: "7", Role: string(sec.RoleSeller)}
	r = r.WithContext(ctxutil.WithAuthUser(r.Context(), claims))
	got, err := request.RequiredClaims(r)
	require.NoError(t, err)
	assert.Same(t, claims, got)
}

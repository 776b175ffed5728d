// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/respond"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pagination"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, pagination.NewResult([]string{"a", "b"}, 1, 2, 5))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"a", "b"}, body["data"])

	meta := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), meta["currentPage"])
	assert.Equal(t, float64(3), meta["totalPages"])
	assert.Equal(t, float64(5), meta["totalItems"])
	assert.Equal(t, float64(2), meta["itemsPerPage"])
	assert.Equal(t, true, meta["hasNextPage"])
	assert.Equal(t, false, meta["hasPrevPage"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "storage_error",
			err:         apperr.Storage(errors.New("dial tcp 10.0.0.5:5432: connection refused")),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_ERROR",
			wantMessage: "Database error",
			wantDetails: "The catalog is temporarily unavailable, please retry later",
		},
		{
			name:        "validation_error_with_fields",
			err:         apperr.ValidationError("Invalid input", apperr.FieldError{Field: "title", Message: "is required"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "Invalid input",
			wantDetails: []any{map[string]any{"field": "title", "message": "is required"}},
		},
		{
			name:        "plain_error_is_hidden",
			err:         errors.New("pq: relation books does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "not_found",
			err:         apperr.NotFound("Book"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Book not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/api/books", nil), tc.err)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			body := decode(t, recorder)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.wantCode, body["code"])
			assert.Equal(t, tc.wantMessage, body["error"])
			assert.Equal(t, tc.wantDetails, body["details"])
			assert.NotContains(t, recorder.Body.String(), "10.0.0.5")
		})
	}
}

// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
)

/*
TestStorage_HidesCause verifies storage errors keep the cause for logs only.
*/
func TestStorage_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.3:5432: connection refused")
	err := apperr.Storage(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "Database error", err.Error())
	assert.NotContains(t, err.Detail, "10.0.0.3")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_TraversesWrapping checks extraction through fmt.Errorf wrapping.
*/
func TestAs_TraversesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("book service: %w", apperr.NotFound("Book"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.True(t, apperr.Is(wrapped, "NOT_FOUND"))
	assert.False(t, apperr.Is(wrapped, "CONFLICT"))

	assert.Nil(t, apperr.As(errors.New("plain")))
}

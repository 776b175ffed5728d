// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/newsletter"
)

func TestHandler_Flow(t *testing.T) {
	f := newFixture(t)
	f.expectMail().Times(1)

	router := chi.NewRouter()
	router.Mount("/api/newsletter", newsletter.NewHandler(f.service).Routes())

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
		return recorder
	}

	recorder := serve(http.MethodPost, "/api/newsletter/subscribe", `{"email":"reader@example.com"}`)
	require.Equal(t, http.StatusAccepted, recorder.Code, recorder.Body.String())

	recorder = serve(http.MethodGet, "/api/newsletter/confirm?token=unknown", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = serve(http.MethodGet, "/api/newsletter/confirm?token="+f.lastToken(t), "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"confirmed"`)

	recorder = serve(http.MethodPost, "/api/newsletter/subscribe", `{"email":"reader@example.com"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = serve(http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"reader@example.com"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"unsubscribed"`)

	recorder = serve(http.MethodPost, "/api/newsletter/subscribe", `{"address":"x"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	sub, err := f.subscriptions.FindByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, newsletter.StatusUnsubscribed, sub.Status)
}

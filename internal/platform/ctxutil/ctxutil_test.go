// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/ctxutil"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the fallback to the default logger.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that seller claims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "17", Role: string(sec.RoleSeller)})
	claims := ctxutil.GetAuthUser(ctx)

	require.NotNil(t, claims)
	assert.Equal(t, "17", claims.UserID)
	assert.Equal(t, "seller", claims.Role)
}

func TestContext_LoggerOr(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Same(t, fallback, ctxutil.LoggerOr(context.Background(), fallback))

	scoped := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, ctxutil.LoggerOr(ctx, fallback))
}

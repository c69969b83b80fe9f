// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lamnguyen/shopora/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_ClientIdentity verifies session and cart IDs round-trip through context.
*/
func TestContext_ClientIdentity(t *testing.T) {
	ctx := context.Background()

	// 1. Initially should be empty (anonymous request)
	assert.Empty(t, ctxutil.GetSessionID(ctx))
	assert.Empty(t, ctxutil.GetCartID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithSessionID(ctx, "session-123")
	ctx = ctxutil.WithCartID(ctx, "cart-456")

	assert.Equal(t, "session-123", ctxutil.GetSessionID(ctx))
	assert.Equal(t, "cart-456", ctxutil.GetCartID(ctx))
}

// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

// Package middleware provides the HTTP middleware chain for the Shopora API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, Client Identity, Rate Limiting, and CORS.
package middleware

import (
	"net/http"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/internal/platform/constants"
	"github.com/lamnguyen/shopora/internal/platform/ctxutil"
	"github.com/lamnguyen/shopora/internal/platform/respond"
)

// ClientIdentity extracts the opaque client identity headers.
//
// # Flow
//  1. Read 'X-Session-ID' — the auth store key for this browser session.
//  2. Read 'X-Cart-ID' — the cart store key for this browser's cart.
//  3. If absent, the request proceeds anonymously / without a cart.
//  4. Inject both values into the request context for downstream use.
//
// The storefront SPA generates these IDs once and persists them client-side.
/// They are correlation keys, not credentials: the session token they map to
// is what actually identifies the user.
func ClientIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			if sessionID := request.Header.Get(constants.HeaderXSessionID); sessionID != "" {
				ctx = ctxutil.WithSessionID(ctx, sessionID)
			}

			if cartID := request.Header.Get(constants.HeaderXCartID); cartID != "" {
				ctx = ctxutil.WithCartID(ctx, cartID)
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that did not present a session ID.
//
// # Usage
//
// Must be registered in the router AFTER [ClientIdentity].
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSessionID(request.Context()) == "" {
			respond.Error(writer, request, apperr.Unauthorized("A session ID is required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireCart blocks requests that did not present a cart ID.
//
// # Usage
//
// Must be registered in the router AFTER [ClientIdentity]. Cart endpoints
// cannot do anything meaningful without knowing which cart to operate on.
func RequireCart(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetCartID(request.Context()) == "" {
			respond.Error(writer, request, apperr.Unauthorized("A cart ID is required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

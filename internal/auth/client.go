// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"context"
)

// Client defines the contract with the external auth collaborator.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and collaborator-contract changes can be reviewed independently.
//
// # Failure Semantics
//
// Every operation may fail with a message-bearing error; no richer taxonomy
// is mandated. The store guarantees that a failing call leaves its state
// consistent (unchanged, or moved to anonymous) and never retries.
//
// # Implementations
//
// MockClient (client_mock.go) is the in-process default; HTTPClient
// (client_http.go) talks to a remote auth API (AUTH_BACKEND=http).
type Client interface {
	// Login validates credentials and returns the user plus a session token.
	Login(ctx context.Context, email, password string) (*User, string, error)

	// Register enrolls a new member and returns the user plus a session token.
	Register(ctx context.Context, input RegisterInput) (*User, string, error)

	// FetchCurrentUser resolves the user identified by the session token.
	FetchCurrentUser(ctx context.Context, token string) (*User, error)

	// UpdateProfile applies a partial profile change and returns the full
	// updated user.
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*User, error)

	// Logout notifies the collaborator that the session ended. Best-effort:
	// the store logs a failure but never blocks local logout on it.
	Logout(ctx context.Context, token string) error
}

// TokenRepository defines the durable storage contract for session tokens —
// the server-side analogue of the browser's local storage "token" key.
//
// One token is stored per opaque client session ID.
type TokenRepository interface {
	// Save overwrites the session token for the given session.
	Save(ctx context.Context, sessionID, token string) error

	// Load returns the persisted token for the given session.
	//
	// Returns [apperr.NotFound] if no token is stored.
	Load(ctx context.Context, sessionID string) (string, error)

	// Delete removes the persisted token for the given session.
	Delete(ctx context.Context, sessionID string) error
}

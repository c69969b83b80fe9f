// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/internal/platform/constants"
	"github.com/lamnguyen/shopora/internal/platform/sec"
	"github.com/lamnguyen/shopora/pkg/uuidv7"
)

// mockAccount pairs a profile with its credential hash. The hash lives here,
// never on [User], so it cannot leak through a state snapshot.
type mockAccount struct {
	user         User
	passwordHash string
}

// MockClient is the in-process auth collaborator (AUTH_BACKEND=mock).
//
// # Scope
//
// It stands in for the real auth backend during development and testing:
// accounts live in memory, passwords are bcrypt-hashed, and session tokens
// are HMAC-signed JWTs minted by [sec.TokenService]. A default account
// (admin@example.com / password) is seeded so the storefront is usable
// out of the box.
type MockClient struct {
	tokenService *sec.TokenService

	mu       sync.Mutex
	accounts map[string]*mockAccount // keyed by email
	byID     map[string]*mockAccount // same accounts, keyed by user ID
}

// NewMockClient creates a MockClient with the default seeded account.
func NewMockClient(tokenService *sec.TokenService) (*MockClient, error) {
	client := &MockClient{
		tokenService: tokenService,
		accounts:     make(map[string]*mockAccount),
		byID:         make(map[string]*mockAccount),
	}

	// Seed the demo administrator account.
	seedHash, err := sec.HashPassword("password")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client.insert(&mockAccount{
		user: User{
			ID:        uuidv7.New(),
			Name:      "Administrator",
			Email:     "admin@example.com",
			Phone:     "13800138000",
			AvatarURL: "/default-avatar.png",
			Addresses: []Address{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: seedHash,
	})

	return client, nil
}

// insert indexes an account under both keys. Caller must hold the lock or
// be in the constructor.
func (client *MockClient) insert(account *mockAccount) {
	client.accounts[account.user.Email] = account
	client.byID[account.user.ID] = account
}

// Login validates credentials and issues a session token.
//
// # Returns
//   - The user profile and a signed session token on success.
//   - [apperr.Unauthorized] for unknown emails or wrong passwords — the same
//     generic message for both, to prevent account enumeration.
func (client *MockClient) Login(_ context.Context, email, password string) (*User, string, error) {
	client.mu.Lock()
	account, ok := client.accounts[email]
	client.mu.Unlock()

	if !ok {
		return nil, "", apperr.Unauthorized("Invalid email or password")
	}

	// Constant-time comparison happens inside bcrypt.
	if !sec.CheckPasswordHash(password, account.passwordHash) {
		return nil, "", apperr.Unauthorized("Invalid email or password")
	}

	token, err := client.tokenService.GenerateSessionToken(account.user.ID, account.user.Email, constants.SessionTokenTTL)
	if err != nil {
		return nil, "", err
	}

	user := cloneUser(account.user)
	return &user, token, nil
}

// Register enrolls a new member and issues a session token.
//
// # Business Rules
//   - Emails must be unique ([apperr.Conflict] otherwise).
//   - IDs are time-sortable UUIDv7 values.
//   - Passwords are stored bcrypt-hashed only.
func (client *MockClient) Register(_ context.Context, input RegisterInput) (*User, string, error) {
	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	client.mu.Lock()
	if _, exists := client.accounts[input.Email]; exists {
		client.mu.Unlock()
		return nil, "", apperr.Conflict("Email is already registered")
	}

	now := time.Now()
	account := &mockAccount{
		user: User{
			ID:        uuidv7.New(),
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			AvatarURL: "/default-avatar.png",
			Addresses: []Address{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: passwordHash,
	}
	client.insert(account)
	client.mu.Unlock()

	token, err := client.tokenService.GenerateSessionToken(account.user.ID, account.user.Email, constants.SessionTokenTTL)
	if err != nil {
		return nil, "", err
	}

	user := cloneUser(account.user)
	return &user, token, nil
}

// FetchCurrentUser resolves the user embedded in a session token.
func (client *MockClient) FetchCurrentUser(_ context.Context, token string) (*User, error) {
	claims, err := client.tokenService.VerifySessionToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session token")
	}

	client.mu.Lock()
	defer client.mu.Unlock()

	account, ok := client.byID[claims.UserID]
	if !ok {
		return nil, apperr.NotFound("User")
	}

	user := cloneUser(account.user)
	return &user, nil
}

// UpdateProfile applies the non-nil fields of the update and returns the
// full refreshed profile.
func (client *MockClient) UpdateProfile(_ context.Context, token string, update ProfileUpdate) (*User, error) {
	claims, err := client.tokenService.VerifySessionToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session token")
	}

	client.mu.Lock()
	defer client.mu.Unlock()

	account, ok := client.byID[claims.UserID]
	if !ok {
		return nil, apperr.NotFound("User")
	}

	if update.Name != nil {
		account.user.Name = *update.Name
	}
	if update.Phone != nil {
		account.user.Phone = *update.Phone
	}
	if update.AvatarURL != nil {
		account.user.AvatarURL = *update.AvatarURL
	}
	if update.Addresses != nil {
		account.user.Addresses = slices.Clone(*update.Addresses)
	}
	account.user.UpdatedAt = time.Now()

	user := cloneUser(account.user)
	return &user, nil
}

// Logout is a no-op for the mock collaborator: tokens are stateless JWTs,
// so there is nothing server-side to revoke.
func (client *MockClient) Logout(_ context.Context, _ string) error {
	return nil
}

// cloneUser deep-copies a user so callers never alias the mock's storage.
func cloneUser(user User) User {
	copied := user
	copied.Addresses = slices.Clone(user.Addresses)
	return copied
}

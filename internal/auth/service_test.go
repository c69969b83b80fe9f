// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen/shopora/internal/auth"
	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/pkg/pointer"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClient is a scriptable auth collaborator for store tests.
type fakeClient struct {
	loginFunc  func(ctx context.Context, email, password string) (*auth.User, string, error)
	fetchFunc  func(ctx context.Context, token string) (*auth.User, error)
	updateFunc func(ctx context.Context, token string, update auth.ProfileUpdate) (*auth.User, error)
	logoutErr  error

	fetchCalls  atomic.Int64
	logoutCalls atomic.Int64
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*auth.User, string, error) {
	return f.loginFunc(ctx, email, password)
}

func (f *fakeClient) Register(ctx context.Context, input auth.RegisterInput) (*auth.User, string, error) {
	return f.loginFunc(ctx, input.Email, input.Password)
}

func (f *fakeClient) FetchCurrentUser(ctx context.Context, token string) (*auth.User, error) {
	f.fetchCalls.Add(1)
	if f.fetchFunc == nil {
		return nil, apperr.Unauthorized("Invalid or expired session token")
	}
	return f.fetchFunc(ctx, token)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, token string, update auth.ProfileUpdate) (*auth.User, error) {
	return f.updateFunc(ctx, token, update)
}

func (f *fakeClient) Logout(ctx context.Context, token string) error {
	f.logoutCalls.Add(1)
	return f.logoutErr
}

/*
TestStore_RestoreWithoutToken verifies that a session with no persisted token
settles as anonymous without ever calling the collaborator.
*/
func TestStore_RestoreWithoutToken(t *testing.T) {
	client := &fakeClient{}
	service := auth.NewService(client, auth.NewMemoryTokenRepository(), testLogger())

	state := service.Store(context.Background(), "sess-1").State()

	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.LastError)
	assert.Zero(t, client.fetchCalls.Load())
}

/*
TestStore_RestoreWithValidToken verifies that a persisted token is exchanged
for the current user on first access.
*/
func TestStore_RestoreWithValidToken(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewMemoryTokenRepository()
	require.NoError(t, tokens.Save(ctx, "sess-1", "token-abc"))

	client := &fakeClient{
		fetchFunc: func(_ context.Context, token string) (*auth.User, error) {
			assert.Equal(t, "token-abc", token)
			return member(), nil
		},
	}

	service := auth.NewService(client, tokens, testLogger())
	state := service.Store(ctx, "sess-1").State()

	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
}

/*
TestStore_RestoreWithRejectedToken verifies that a token the collaborator
rejects is discarded and the session settles as anonymous, not errored.
*/
func TestStore_RestoreWithRejectedToken(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewMemoryTokenRepository()
	require.NoError(t, tokens.Save(ctx, "sess-1", "token-expired"))

	client := &fakeClient{} // fetchFunc nil: every fetch is rejected

	service := auth.NewService(client, tokens, testLogger())
	state := service.Store(ctx, "sess-1").State()

	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.LastError)

	_, err := tokens.Load(ctx, "sess-1")
	assert.Error(t, err)
}

/*
TestStore_LoginSuccess verifies the happy path: authenticated state and the
session token persisted for the next restore.
*/
func TestStore_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewMemoryTokenRepository()
	client := &fakeClient{
		loginFunc: func(_ context.Context, email, _ string) (*auth.User, string, error) {
			return member(), "token-new", nil
		},
	}

	service := auth.NewService(client, tokens, testLogger())
	store := service.Store(ctx, "sess-1")

	state, err := store.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)

	saved, err := tokens.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "token-new", saved)
}

/*
TestStore_LoginFailure verifies that a rejected login propagates the error to
the caller and records it in the state, leaving the session anonymous.
*/
func TestStore_LoginFailure(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		loginFunc: func(_ context.Context, _, _ string) (*auth.User, string, error) {
			return nil, "", apperr.Unauthorized("Invalid email or password")
		},
	}

	service := auth.NewService(client, auth.NewMemoryTokenRepository(), testLogger())
	store := service.Store(ctx, "sess-1")

	state, err := store.Login(ctx, "admin@example.com", "wrong")
	require.Error(t, err)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Equal(t, "Invalid email or password", state.LastError)
}

/*
TestStore_Logout verifies the synchronous local logout: the persisted token
is removed and the state resets to anonymous even when the collaborator
notification fails.
*/
func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewMemoryTokenRepository()
	client := &fakeClient{
		loginFunc: func(_ context.Context, _, _ string) (*auth.User, string, error) {
			return member(), "token-new", nil
		},
		logoutErr: errors.New("collaborator unreachable"),
	}

	service := auth.NewService(client, tokens, testLogger())
	store := service.Store(ctx, "sess-1")

	_, err := store.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)

	state := store.Logout(ctx)
	assert.Equal(t, auth.State{}, state)

	_, err = tokens.Load(ctx, "sess-1")
	assert.Error(t, err)
}

/*
TestStore_StaleLoginDiscarded verifies the overlapping-attempt policy: a
login that completes after a logout superseded it must not resurrect the
authenticated state, though its outcome still reaches its caller.
*/
func TestStore_StaleLoginDiscarded(t *testing.T) {
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{
		loginFunc: func(_ context.Context, _, _ string) (*auth.User, string, error) {
			close(started)
			<-release
			return member(), "token-stale", nil
		},
	}

	tokens := auth.NewMemoryTokenRepository()
	service := auth.NewService(client, tokens, testLogger())
	store := service.Store(ctx, "sess-1")

	done := make(chan auth.State, 1)
	go func() {
		state, _ := store.Login(ctx, "admin@example.com", "password")
		done <- state
	}()

	// Supersede the in-flight attempt once it has begun, then let it complete.
	<-started
	store.Logout(ctx)
	close(release)
	<-done

	state := store.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)

	// The stale attempt's token must not have been persisted either.
	_, err := tokens.Load(ctx, "sess-1")
	assert.Error(t, err)
}

// gatedTokenRepository blocks the first Save until released, letting tests
// interleave other store operations with an in-flight token write.
type gatedTokenRepository struct {
	auth.TokenRepository
	saveStarted chan struct{}
	release     chan struct{}
	gateOnce    sync.Once
}

func (repository *gatedTokenRepository) Save(ctx context.Context, sessionID, token string) error {
	repository.gateOnce.Do(func() {
		close(repository.saveStarted)
		<-repository.release
	})
	return repository.TokenRepository.Save(ctx, sessionID, token)
}

/*
TestStore_LogoutDuringLoginCompletion verifies that a logout issued while a
successful login is still writing its token cannot be overridden: whatever
the interleaving, the session ends anonymous with no persisted token.
*/
func TestStore_LogoutDuringLoginCompletion(t *testing.T) {
	ctx := context.Background()

	inner := auth.NewMemoryTokenRepository()
	tokens := &gatedTokenRepository{
		TokenRepository: inner,
		saveStarted:     make(chan struct{}),
		release:         make(chan struct{}),
	}
	client := &fakeClient{
		loginFunc: func(_ context.Context, _, _ string) (*auth.User, string, error) {
			return member(), "token-new", nil
		},
	}

	service := auth.NewService(client, tokens, testLogger())
	store := service.Store(ctx, "sess-1")

	loginDone := make(chan struct{})
	go func() {
		defer close(loginDone)
		_, _ = store.Login(ctx, "admin@example.com", "password")
	}()

	// Issue the logout while the login completion is persisting its token,
	// give it time to reach the store, then let the write resume.
	<-tokens.saveStarted
	logoutDone := make(chan struct{})
	go func() {
		defer close(logoutDone)
		store.Logout(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	close(tokens.release)
	<-loginDone
	<-logoutDone

	state := store.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)

	_, err := inner.Load(ctx, "sess-1")
	assert.Error(t, err, "logout must leave no persisted token behind")
}

/*
TestStore_UpdateUser verifies both sides of the no-optimistic-update rule.
*/
func TestStore_UpdateUser(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewMemoryTokenRepository()
	client := &fakeClient{
		loginFunc: func(_ context.Context, _, _ string) (*auth.User, string, error) {
			return member(), "token-new", nil
		},
	}

	service := auth.NewService(client, tokens, testLogger())
	store := service.Store(ctx, "sess-1")
	_, err := store.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)

	// Failure: state is untouched and the error propagates.
	client.updateFunc = func(_ context.Context, _ string, _ auth.ProfileUpdate) (*auth.User, error) {
		return nil, apperr.Upstream("Auth service failed", errors.New("boom"))
	}
	_, err = store.UpdateUser(ctx, auth.ProfileUpdate{Name: pointer.To("New Name")})
	require.Error(t, err)
	assert.Equal(t, "Administrator", store.State().User.Name)

	// Success: the returned user replaces the current one wholesale.
	client.updateFunc = func(_ context.Context, _ string, update auth.ProfileUpdate) (*auth.User, error) {
		updated := member()
		updated.Name = pointer.Val(update.Name)
		return updated, nil
	}
	state, err := store.UpdateUser(ctx, auth.ProfileUpdate{Name: pointer.To("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", state.User.Name)
	assert.True(t, state.IsAuthenticated)
}

/*
TestStore_UpdateUserWithoutSession verifies that a profile update on a
session holding no token fails as an authentication error, so the HTTP layer
answers 401 rather than leaking the token lookup as a 404.
*/
func TestStore_UpdateUserWithoutSession(t *testing.T) {
	ctx := context.Background()
	service := auth.NewService(&fakeClient{}, auth.NewMemoryTokenRepository(), testLogger())
	store := service.Store(ctx, "sess-1")

	_, err := store.UpdateUser(ctx, auth.ProfileUpdate{Name: pointer.To("New Name")})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusUnauthorized, appError.HTTPStatus)
}

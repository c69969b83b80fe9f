// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
)

// logoutNotifyTimeout bounds the fire-and-forget collaborator notification
// so an unresponsive collaborator cannot leak goroutines indefinitely.
const logoutNotifyTimeout = 5 * time.Second

// Subscriber is a callback invoked with the new state after every dispatch
// that changed the session state.
type Subscriber func(State)

// Store holds the live auth state of a single browser session.
//
// # Lifecycle
//
// Restoring (initial) → Authenticated | Anonymous. From Anonymous, Login and
// Register pass through a pending sub-state (IsLoading) back to Authenticated
// or to Anonymous with LastError set. Logout is synchronous and cannot fail.
//
// # Stale Completions
//
// Overlapping login attempts are resolved by an epoch counter: starting a
// login, registration, or logout bumps the epoch, and any collaborator call
// that completes under an older epoch is discarded rather than applied.
// The error from a discarded completion still propagates to its caller.
type Store struct {
	sessionID string
	client    Client
	tokens    TokenRepository
	logger    *slog.Logger

	mu          sync.Mutex
	state       State
	epoch       uint64
	subscribers map[int]Subscriber
	nextSubID   int
}

// NewStore constructs an auth store for one session and runs the one-time
// session restore.
//
// # Restore Flow
//
//  1. No persisted token → settle as Anonymous; the collaborator is not called.
//  2. Token present → FetchCurrentUser; success installs the user.
//  3. Any fetch failure discards the stored token and settles as Anonymous —
//     an expired token is an expected condition, not an error to surface.
func NewStore(ctx context.Context, sessionID string, client Client, tokens TokenRepository, logger *slog.Logger) *Store {
	store := &Store{
		sessionID:   sessionID,
		client:      client,
		tokens:      tokens,
		logger:      logger,
		state:       InitialState(),
		subscribers: make(map[int]Subscriber),
	}

	store.restoreSession(ctx)
	return store
}

// restoreSession performs the startup token check described on [NewStore].
func (store *Store) restoreSession(ctx context.Context) {
	token, err := store.tokens.Load(ctx, store.sessionID)
	if err != nil {
		// Absent or unreadable token: anonymous, and no collaborator call.
		store.dispatch(RestoreFinished{})
		return
	}

	user, err := store.client.FetchCurrentUser(ctx, token)
	if err != nil {
		store.logger.Debug("session_restore_rejected_discarding_token",
			slog.String("session_id", store.sessionID),
			slog.Any("error", err),
		)
		if deleteErr := store.tokens.Delete(ctx, store.sessionID); deleteErr != nil {
			store.logger.Error("session_token_delete_failed", slog.Any("error", deleteErr))
		}
		store.dispatch(RestoreFinished{})
		return
	}

	store.dispatch(LoginSucceeded{User: user})
}

// State returns the current session state snapshot.
func (store *Store) State() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state
}

// Subscribe registers a callback for state change notifications and returns
// an unsubscribe function. Notifications fire synchronously on the
// dispatching goroutine.
func (store *Store) Subscribe(subscriber Subscriber) func() {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.nextSubID
	store.nextSubID++
	store.subscribers[id] = subscriber

	return func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		delete(store.subscribers, id)
	}
}

// dispatch applies an action through the reducer and notifies subscribers.
func (store *Store) dispatch(action Action) State {
	store.mu.Lock()
	next := Reduce(store.state, action)
	store.state = next

	notifyList := make([]Subscriber, 0, len(store.subscribers))
	for _, subscriber := range store.subscribers {
		notifyList = append(notifyList, subscriber)
	}
	store.mu.Unlock()

	for _, subscriber := range notifyList {
		subscriber(next)
	}

	return next
}

// beginAttempt bumps the epoch, marks the session as loading, and returns
// the epoch the caller must present when completing.
func (store *Store) beginAttempt() uint64 {
	store.mu.Lock()
	store.epoch++
	attempt := store.epoch
	store.mu.Unlock()

	store.dispatch(LoginStarted{})
	return attempt
}

// Login authenticates the session against the collaborator.
//
// # Returns
//
// The new state, and the collaborator's error on failure. The error is
// propagated, not swallowed, so the caller can keep its form open; the same
// failure is also recorded in State.LastError.
func (store *Store) Login(ctx context.Context, email, password string) (State, error) {
	attempt := store.beginAttempt()

	// Collaborator call runs outside the lock: it may suspend, and the
	// store stays responsive (IsLoading is the only observable sign).
	user, token, err := store.client.Login(ctx, email, password)

	return store.completeAttempt(ctx, attempt, user, token, err)
}

// Register enrolls a new member through the collaborator. Contract is
// identical to [Store.Login].
func (store *Store) Register(ctx context.Context, input RegisterInput) (State, error) {
	attempt := store.beginAttempt()

	user, token, err := store.client.Register(ctx, input)

	return store.completeAttempt(ctx, attempt, user, token, err)
}

// completeAttempt applies the outcome of a login/register collaborator call,
// discarding it entirely when a newer attempt has superseded this one.
//
// # Atomicity
//
// The epoch test, the token save, and the state swap all happen under the
// store mutex. A logout (or newer attempt) that wants to supersede this
// completion must bump the epoch under the same mutex, so it either runs
// before the check here (completion discarded) or after the swap (completion
// applied, then cleanly overridden). It can never land in between and have
// a stale token or user resurrected over it.
func (store *Store) completeAttempt(ctx context.Context, attempt uint64, user *User, token string, err error) (State, error) {
	store.mu.Lock()

	if store.epoch != attempt {
		current := store.state
		store.mu.Unlock()
		store.logger.Debug("auth_stale_completion_discarded",
			slog.String("session_id", store.sessionID),
			slog.Uint64("attempt", attempt),
		)
		return current, err
	}

	var action Action
	if err != nil {
		action = LoginFailed{Message: err.Error()}
	} else {
		// Persist the session token durably so the next visit can restore.
		// A write failure degrades (the session just won't survive a
		// restart) but never rolls back an authentication the collaborator
		// accepted.
		if saveErr := store.tokens.Save(ctx, store.sessionID, token); saveErr != nil {
			store.logger.Error("session_token_save_failed",
				slog.String("session_id", store.sessionID),
				slog.Any("error", saveErr),
			)
		}
		action = LoginSucceeded{User: user}
	}

	next := Reduce(store.state, action)
	store.state = next

	notifyList := make([]Subscriber, 0, len(store.subscribers))
	for _, subscriber := range store.subscribers {
		notifyList = append(notifyList, subscriber)
	}
	store.mu.Unlock()

	for _, subscriber := range notifyList {
		subscriber(next)
	}

	return next, err
}

// Logout clears the persisted token and resets the session to anonymous.
//
// # Semantics
//
// The local transition is synchronous and has no failure path. The
// collaborator is notified asynchronously, best-effort: its outcome never
// blocks or reverses the local logout. Bumping the epoch makes any in-flight
// login attempt stale.
func (store *Store) Logout(ctx context.Context) State {
	store.mu.Lock()
	store.epoch++
	store.mu.Unlock()

	token, loadErr := store.tokens.Load(ctx, store.sessionID)

	if err := store.tokens.Delete(ctx, store.sessionID); err != nil {
		store.logger.Error("session_token_delete_failed",
			slog.String("session_id", store.sessionID),
			slog.Any("error", err),
		)
	}

	// Fire-and-forget collaborator notification.
	if loadErr == nil && token != "" {
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), logoutNotifyTimeout)
			defer cancel()

			if err := store.client.Logout(notifyCtx, token); err != nil {
				store.logger.Debug("logout_notify_failed", slog.Any("error", err))
			}
		}()
	}

	return store.dispatch(LoggedOut{})
}

// UpdateUser applies a partial profile change through the collaborator.
//
// # Semantics
//
// No optimistic update: on failure the error propagates to the caller and
// the state is left unchanged. On success the returned user replaces the
// current one wholesale. A session without a valid token is an
// authentication failure, not a lookup miss.
func (store *Store) UpdateUser(ctx context.Context, update ProfileUpdate) (State, error) {
	token, err := store.tokens.Load(ctx, store.sessionID)
	if err != nil {
		if apperr.As(err) != nil {
			return store.State(), apperr.Unauthorized("No active session")
		}
		return store.State(), err
	}

	user, err := store.client.UpdateProfile(ctx, token, update)
	if err != nil {
		return store.State(), err
	}

	next := store.dispatch(UserUpdated{User: user})
	return next, nil
}

// Service owns the auth stores of the running process, keyed by session ID.
//
// Constructed once at application start and injected into the HTTP layer,
// mirroring the cart [cart.Service].
type Service struct {
	client Client
	tokens TokenRepository
	logger *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(client Client, tokens TokenRepository, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		tokens: tokens,
		logger: logger,
		stores: make(map[string]*Store),
	}
}

// Store returns the live auth store for the given session ID, running the
// one-time session restore on first access.
func (service *Service) Store(ctx context.Context, sessionID string) *Store {
	service.mu.Lock()
	defer service.mu.Unlock()

	if store, ok := service.stores[sessionID]; ok {
		return store
	}

	store := NewStore(ctx, sessionID, service.client, service.tokens, service.logger)
	service.stores[sessionID] = store
	return store
}

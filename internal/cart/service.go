// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
)

// Subscriber is a callback invoked with the new state after every dispatch
// that produced a state change.
type Subscriber func(State)

// Store holds the live state of a single cart.
//
// # Lifecycle
//
// A Store is created once per cart ID, hydrates once from the snapshot
// repository at construction, and then mutates only through [Store.Dispatch].
// It is never explicitly destroyed; the snapshot persists across sessions
// until the cart is cleared.
//
// # Concurrency
//
// All dispatches are serialized behind a mutex — the Go analogue of the
// single-threaded reducer loop the storefront SPA runs in the browser.
type Store struct {
	cartID     string
	repository SnapshotRepository
	logger     *slog.Logger

	mu          sync.Mutex
	state       State
	subscribers map[int]Subscriber
	nextSubID   int

	// persistMu serializes snapshot writes in state-swap order. It is
	// acquired while mu is still held, so two dispatches can never persist
	// in the opposite order of their state swaps.
	persistMu sync.Mutex
}

// NewStore constructs a cart store and hydrates it from durable storage.
//
// # Failure Handling
//
// A missing or corrupt snapshot is never an error: the store starts empty
// and logs the recovery at debug level. This mirrors the "corrupt local
// storage falls back to an empty cart" contract of the storefront.
func NewStore(ctx context.Context, cartID string, repository SnapshotRepository, logger *slog.Logger) *Store {
	store := &Store{
		cartID:      cartID,
		repository:  repository,
		logger:      logger,
		state:       EmptyState(),
		subscribers: make(map[int]Subscriber),
	}

	// Hydrate exactly once. Load replaces wholesale and recomputes totals.
	items, err := repository.Load(ctx, cartID)
	if err != nil {
		if apperr.As(err) == nil {
			// Corrupt snapshot rather than a plain miss — worth a warning.
			logger.Warn("cart_snapshot_unreadable_starting_empty",
				slog.String("cart_id", cartID),
				slog.Any("error", err),
			)
		}
		return store
	}

	store.state = Reduce(store.state, Load{Items: items})
	return store
}

// State returns the current cart state snapshot.
func (store *Store) State() State {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state
}

// TotalItems returns the cached item count. It always equals the sum of the
// current items' quantities — the reducer recomputes it on every mutation.
func (store *Store) TotalItems() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.ItemCount
}

// TotalPrice returns the cached cart total. It always equals the sum of
// unit price times quantity over the current items.
func (store *Store) TotalPrice() float64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.Total
}

// Subscribe registers a callback for state change notifications and returns
// an unsubscribe function.
//
// Notifications fire synchronously on the dispatching goroutine, after the
// state swap and before the call returns — re-render timing beyond that is
// the consumer's concern.
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

// Dispatch applies an action through the reducer and returns the new state.
//
// # Flow
//
//  1. Reduce old state + action to the next state (pure).
//  2. Swap the state under the lock.
//  3. Mirror the full item list to durable storage if the items changed.
//  4. Notify subscribers with the new state.
//
// A storage write failure never rolls back the in-memory state; it is logged
// and the next successful write overwrites the stale snapshot anyway.
//
// Writes are serialized in state-swap order: the persistence lock is taken
// before the state lock is released, so a slow write for an older state can
// never overwrite the snapshot of a newer one.
func (store *Store) Dispatch(ctx context.Context, action Action) State {
	store.mu.Lock()

	previous := store.state
	next := Reduce(previous, action)
	store.state = next

	itemsChanged := !ItemsEqual(previous.Items, next.Items)

	notifyList := make([]Subscriber, 0, len(store.subscribers))
	for _, subscriber := range store.subscribers {
		notifyList = append(notifyList, subscriber)
	}

	if itemsChanged {
		store.persistMu.Lock()
	}
	store.mu.Unlock()

	if itemsChanged {
		store.persist(ctx, next)
		store.persistMu.Unlock()
	}

	for _, subscriber := range notifyList {
		subscriber(next)
	}

	return next
}

// persist mirrors the current item list to the snapshot repository.
// Emptied carts delete their snapshot instead of storing an empty list.
func (store *Store) persist(ctx context.Context, state State) {
	var err error
	if len(state.Items) == 0 {
		err = store.repository.Delete(ctx, store.cartID)
	} else {
		err = store.repository.Save(ctx, store.cartID, state.Items)
	}

	if err != nil {
		store.logger.Error("cart_snapshot_write_failed",
			slog.String("cart_id", store.cartID),
			slog.Any("error", err),
		)
	}
}

// Service owns the cart stores of the running process, keyed by cart ID.
//
// # Architecture
//
// The service is constructed once at application start and injected into the
// HTTP layer — no hidden module-level state. Stores are created lazily on
// first touch of a cart ID and kept for the process lifetime.
type Service struct {
	repository SnapshotRepository
	logger     *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewService constructs a new cart [Service] with its storage dependency.
func NewService(repository SnapshotRepository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
		stores:     make(map[string]*Store),
	}
}

// Store returns the live store for the given cart ID, hydrating it from
// durable storage on first access.
func (service *Service) Store(ctx context.Context, cartID string) *Store {
	service.mu.Lock()
	defer service.mu.Unlock()

	if store, ok := service.stores[cartID]; ok {
		return store
	}

	store := NewStore(ctx, cartID, service.repository, service.logger)
	service.stores[cartID] = store
	return store
}

// AddItem merges a line item into the cart and returns the new state.
//
// # Business Rules
//   - Same ProductID merges (quantity increments), never duplicates.
//   - Quantities below 1 are clamped to 1.
func (service *Service) AddItem(ctx context.Context, cartID string, item LineItem, quantity int) State {
	return service.Store(ctx, cartID).Dispatch(ctx, AddItem{Item: item, Quantity: quantity})
}

// RemoveItem deletes a line item from the cart and returns the new state.
// Removing an absent product is a no-op.
func (service *Service) RemoveItem(ctx context.Context, cartID string, productID string) State {
	return service.Store(ctx, cartID).Dispatch(ctx, RemoveItem{ProductID: productID})
}

// SetQuantity replaces a line item's quantity and returns the new state.
// A quantity of zero or below removes the item entirely.
func (service *Service) SetQuantity(ctx context.Context, cartID string, productID string, quantity int) State {
	return service.Store(ctx, cartID).Dispatch(ctx, SetQuantity{ProductID: productID, Quantity: quantity})
}

// Clear resets the cart to the empty state and returns it.
func (service *Service) Clear(ctx context.Context, cartID string) State {
	return service.Store(ctx, cartID).Dispatch(ctx, Clear{})
}

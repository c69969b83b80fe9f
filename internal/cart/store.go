// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart

import (
	"context"
)

// SnapshotRepository defines the durable storage contract for cart snapshots.
//
// # Semantics
//
// Writes are total: Save overwrites the previous snapshot with the full line
// item sequence, never an incremental diff. Reads happen once per cart, at
// store hydration. The stored encoding must round-trip: decode(encode(items))
// reproduces an equal sequence of [LineItem].
//
// # Implementations
//
// Redis is the canonical backend (package file store_redis.go); PostgreSQL
// (store_postgres.go) and an in-memory map (store_memory.go) are selectable
// via CART_BACKEND.
type SnapshotRepository interface {
	// Save overwrites the snapshot for the given cart with the full item list.
	Save(ctx context.Context, cartID string, items []LineItem) error

	// Load returns the persisted item list for the given cart.
	//
	// Returns [apperr.NotFound] if no snapshot exists. A corrupt snapshot
	// surfaces as a wrapped decode error; callers treat both cases as
	// "no cart" and start empty.
	Load(ctx context.Context, cartID string) ([]LineItem, error)

	// Delete removes the snapshot for the given cart entirely.
	// Used when a cart is cleared, so emptied carts reclaim their storage.
	Delete(ctx context.Context, cartID string) error
}

// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
)

// MemorySnapshotRepository implements [SnapshotRepository] with an in-process
// map. It is used in tests and for CART_BACKEND=memory development runs.
//
// # Fidelity
//
// Snapshots are stored as encoded JSON rather than live slices, so the
// encode/decode round trip is exercised exactly as with the real backends.
type MemorySnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemorySnapshotRepository creates an empty in-memory SnapshotRepository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{snapshots: make(map[string][]byte)}
}

// Save overwrites the snapshot for the given cart with the full item list.
func (repository *MemorySnapshotRepository) Save(_ context.Context, cartID string, items []LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("memory_cart_snapshot_encode_failed: %w", err)
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.snapshots[cartID] = payload

	return nil
}

// Load returns the persisted item list, or [apperr.NotFound] if absent.
func (repository *MemorySnapshotRepository) Load(_ context.Context, cartID string) ([]LineItem, error) {
	repository.mu.RLock()
	payload, ok := repository.snapshots[cartID]
	repository.mu.RUnlock()

	if !ok {
		return nil, apperr.NotFound("Cart snapshot")
	}

	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("memory_cart_snapshot_decode_failed: %w", err)
	}

	return items, nil
}

// Delete removes the snapshot for the given cart.
func (repository *MemorySnapshotRepository) Delete(_ context.Context, cartID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	delete(repository.snapshots, cartID)
	return nil
}

// Corrupt overwrites a stored snapshot with undecodable bytes.
// Test helper for the "corrupt snapshot falls back to empty cart" contract.
func (repository *MemorySnapshotRepository) Corrupt(cartID string) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.snapshots[cartID] = []byte("{not-json")
}

// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
)

// PostgresSnapshotRepository implements [SnapshotRepository] using PostgreSQL.
//
// # Architecture
//
// Snapshots live in the storefront.cart_snapshot table, one JSONB row per
// cart. Storage-specific errors (like pgx.ErrNoRows) are mapped to
// domain-friendly [apperr.AppError] types to avoid leaking storage details.
type PostgresSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSnapshotRepository creates a new PostgreSQL implementation of
// the SnapshotRepository.
func NewPostgresSnapshotRepository(pool *pgxpool.Pool) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{pool: pool}
}

// Save upserts the snapshot row for the given cart.
//
// # Parameters
//   - ctx: Context for the database operation.
//   - cartID: The opaque client cart identifier.
//   - items: The full line item sequence to persist.
func (repository *PostgresSnapshotRepository) Save(ctx context.Context, cartID string, items []LineItem) error {
	const query = `
		INSERT INTO storefront.cart_snapshot (cartid, items, updatedat)
		VALUES ($1, $2, $3)
		ON CONFLICT (cartid)
		DO UPDATE SET items = EXCLUDED.items, updatedat = EXCLUDED.updatedat`

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("postgres_cart_snapshot_encode_failed: %w", err)
	}

	_, err = repository.pool.Exec(ctx, query, cartID, payload, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_cart_snapshot_save_failed: %w", err)
	}

	return nil
}

// Load retrieves the persisted item list for the given cart.
//
// # Returns
//
// Returns the decoded items, or [apperr.NotFound] if no snapshot row exists.
func (repository *PostgresSnapshotRepository) Load(ctx context.Context, cartID string) ([]LineItem, error) {
	const query = `
		SELECT items
		FROM storefront.cart_snapshot
		WHERE cartid = $1`

	var payload []byte
	err := repository.pool.QueryRow(ctx, query, cartID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Cart snapshot")
		}
		return nil, fmt.Errorf("postgres_cart_snapshot_load_failed: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("postgres_cart_snapshot_decode_failed: %w", err)
	}

	return items, nil
}

// Delete removes the snapshot row for the given cart.
func (repository *PostgresSnapshotRepository) Delete(ctx context.Context, cartID string) error {
	const query = `
		DELETE FROM storefront.cart_snapshot
		WHERE cartid = $1`

	if _, err := repository.pool.Exec(ctx, query, cartID); err != nil {
		return fmt.Errorf("postgres_cart_snapshot_delete_failed: %w", err)
	}

	return nil
}

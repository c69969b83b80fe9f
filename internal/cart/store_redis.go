// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/internal/platform/constants"
)

// RedisSnapshotRepository implements [SnapshotRepository] using Redis.
//
// # Encoding
//
// The full line item sequence is stored as a single JSON array under one key
// per cart — the same shape the storefront SPA kept under its local storage
// "cart" key. No TTL is set: carts persist until cleared.
type RedisSnapshotRepository struct {
	client *redis.Client
}

// NewRedisSnapshotRepository creates a new Redis-backed SnapshotRepository.
func NewRedisSnapshotRepository(client *redis.Client) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{client: client}
}

/*
Save overwrites the snapshot for the given cart with the full item list.

Parameters:
  - context: context.Context
  - cartID: string
  - items: []LineItem

Returns:
  - error: Encoding or storage failures
*/
func (repository *RedisSnapshotRepository) Save(context context.Context, cartID string, items []LineItem) error {

	// Use constants for key prefix
	key := constants.RedisPrefixCartSnapshot + cartID

	// Encode the full item sequence as one JSON document
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("redis_cart_snapshot_encode_failed: %w", err)
	}

	// Overwrite the previous snapshot (total write, not incremental)
	if err := repository.client.Set(context, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis_cart_snapshot_save_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Load returns the persisted item list for the given cart.

Description: Returns apperr.NotFound if no snapshot exists.

Parameters:
  - context: context.Context
  - cartID: string

Returns:
  - []LineItem: The decoded line items
  - error: apperr.NotFound, decode failures, or connectivity errors
*/
func (repository *RedisSnapshotRepository) Load(context context.Context, cartID string) ([]LineItem, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixCartSnapshot + cartID

	// Get the snapshot from Redis
	payload, err := repository.client.Get(context, key).Bytes()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Cart snapshot")
		}
		return nil, fmt.Errorf("redis_cart_snapshot_load_failed: %w", err)
	}

	// Decode the item sequence
	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("redis_cart_snapshot_decode_failed: %w", err)
	}

	// Return the items
	return items, nil
}

/*
Delete removes the snapshot for the given cart.

Parameters:
  - context: context.Context
  - cartID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSnapshotRepository) Delete(context context.Context, cartID string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixCartSnapshot + cartID

	// Delete the snapshot from Redis
	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_cart_snapshot_delete_failed: %w", err)
	}

	// Return nil on success
	return nil
}

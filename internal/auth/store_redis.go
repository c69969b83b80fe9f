// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/internal/platform/constants"
)

// RedisTokenRepository implements [TokenRepository] using Redis.
//
// # Encoding
//
// One token string per session key. The key expires together with the token
// it stores, so abandoned sessions age out on their own.
type RedisTokenRepository struct {
	client *redis.Client
}

// NewRedisTokenRepository creates a new Redis-backed TokenRepository.
func NewRedisTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client}
}

/*
Save overwrites the session token for the given session.

Parameters:
  - context: context.Context
  - sessionID: string
  - token: string

Returns:
  - error: Storage failures
*/
func (repository *RedisTokenRepository) Save(context context.Context, sessionID, token string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixSessionToken + sessionID

	// Overwrite the previous token; expiry matches the token lifetime
	if err := repository.client.Set(context, key, token, constants.SessionTokenTTL).Err(); err != nil {
		return fmt.Errorf("redis_session_token_save_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Load returns the persisted token for the given session.

Description: Returns apperr.NotFound if no token is stored.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - string: The stored session token
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisTokenRepository) Load(context context.Context, sessionID string) (string, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixSessionToken + sessionID

	// Get the token from Redis
	token, err := repository.client.Get(context, key).Result()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session token")
		}
		return "", fmt.Errorf("redis_session_token_load_failed: %w", err)
	}

	// Return the token
	return token, nil
}

/*
Delete removes the persisted token for the given session.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisTokenRepository) Delete(context context.Context, sessionID string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixSessionToken + sessionID

	// Delete the token from Redis
	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_token_delete_failed: %w", err)
	}

	// Return nil on success
	return nil
}

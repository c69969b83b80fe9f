// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"context"
	"sync"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
)

// MemoryTokenRepository implements [TokenRepository] with an in-process map.
// It is used in tests and for development runs without Redis.
type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryTokenRepository creates an empty in-memory TokenRepository.
func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{tokens: make(map[string]string)}
}

// Save overwrites the session token for the given session.
func (repository *MemoryTokenRepository) Save(_ context.Context, sessionID, token string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.tokens[sessionID] = token
	return nil
}

// Load returns the persisted token, or [apperr.NotFound] if absent.
func (repository *MemoryTokenRepository) Load(_ context.Context, sessionID string) (string, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	token, ok := repository.tokens[sessionID]
	if !ok {
		return "", apperr.NotFound("Session token")
	}

	return token, nil
}

// Delete removes the persisted token for the given session.
func (repository *MemoryTokenRepository) Delete(_ context.Context, sessionID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	delete(repository.tokens, sessionID)
	return nil
}

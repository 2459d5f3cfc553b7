// Package tokenstore provides process-local TokenStore adapters: an in-memory
// map and a JSON file on disk.
package tokenstore

import (
	"context"
	"sync"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

// Memory keeps the token pair under the fixed storage keys in a map. It does
// not survive a restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ ports.TokenStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string, 2)}
}

func (m *Memory) Load(_ context.Context) (domain.TokenPair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.TokenPair{
		AccessToken:  m.data[domain.AccessTokenKey],
		RefreshToken: m.data[domain.RefreshTokenKey],
	}, nil
}

func (m *Memory) Save(_ context.Context, tokens domain.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[domain.AccessTokenKey] = tokens.AccessToken
	m.data[domain.RefreshTokenKey] = tokens.RefreshToken
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, domain.AccessTokenKey)
	delete(m.data, domain.RefreshTokenKey)
	return nil
}

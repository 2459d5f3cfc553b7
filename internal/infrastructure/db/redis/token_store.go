package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

// DefaultSessionTTL matches the refresh token lifetime issued by the API.
const DefaultSessionTTL = 7 * 24 * time.Hour

// TokenStore persists the token pair in Redis.
// Key format: storefront:session:<profile>:<access_token|refresh_token>
type TokenStore struct {
	client  *redis.Client
	profile string
	ttl     time.Duration
}

var _ ports.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates a TokenStore for one client profile. A ttl <= 0 keeps
// the keys until Clear.
func NewTokenStore(client *redis.Client, profile string, ttl time.Duration) *TokenStore {
	if ttl < 0 {
		ttl = 0
	}
	return &TokenStore{client: client, profile: profile, ttl: ttl}
}

// Load reads both keys in one round trip. Missing keys come back empty.
func (s *TokenStore) Load(ctx context.Context) (domain.TokenPair, error) {
	vals, err := s.client.MGet(ctx, s.key(domain.AccessTokenKey), s.key(domain.RefreshTokenKey)).Result()
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("redis token load: %w", err)
	}
	var pair domain.TokenPair
	if len(vals) == 2 {
		pair.AccessToken, _ = vals[0].(string)
		pair.RefreshToken, _ = vals[1].(string)
	}
	return pair, nil
}

// Save writes both keys atomically.
func (s *TokenStore) Save(ctx context.Context, tokens domain.TokenPair) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.key(domain.AccessTokenKey), tokens.AccessToken, s.ttl)
		p.Set(ctx, s.key(domain.RefreshTokenKey), tokens.RefreshToken, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis token save: %w", err)
	}
	return nil
}

// Clear deletes both keys; deleting absent keys is not an error.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(domain.AccessTokenKey), s.key(domain.RefreshTokenKey)).Err(); err != nil {
		return fmt.Errorf("redis token clear: %w", err)
	}
	return nil
}

func (s *TokenStore) key(name string) string {
	return fmt.Sprintf("storefront:session:%s:%s", s.profile, name)
}

package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/99minutos/storefront/internal/core/domain"
)

// Runs only when REDIS_TEST_ADDR points at a disposable Redis instance.
func TestTokenStore_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	s := NewTokenStore(client, "test-"+time.Now().Format("150405.000000"), time.Minute)
	defer s.Clear(ctx)

	if got, err := s.Load(ctx); err != nil || !got.IsZero() {
		t.Fatalf("expected empty pair, got %+v, %v", got, err)
	}
	pair := domain.TokenPair{AccessToken: "a", RefreshToken: "r"}
	if err := s.Save(ctx, pair); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil || got.AccessToken != "a" || got.RefreshToken != "r" {
		t.Fatalf("unexpected load: %+v, %v", got, err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := s.Load(ctx); !got.IsZero() {
		t.Fatalf("expected cleared pair, got %+v", got)
	}
}

func TestTokenStore_KeyFormat(t *testing.T) {
	s := NewTokenStore(nil, "default", -time.Second)
	if s.ttl != 0 {
		t.Fatalf("negative ttl should clamp to 0, got %v", s.ttl)
	}
	if got := s.key(domain.AccessTokenKey); got != "storefront:session:default:access_token" {
		t.Fatalf("unexpected key %q", got)
	}
}

package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient(context.Background())
	if err != nil {
		t.Fatalf("LoadClient: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000" || cfg.Timeout != 15*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Tokens.Store != StoreFile || cfg.Tokens.Profile != "default" {
		t.Fatalf("unexpected token defaults: %+v", cfg.Tokens)
	}
}

func TestLoadClient_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://shop.example.com")
	t.Setenv("TOKEN_STORE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := LoadClient(context.Background())
	if err != nil {
		t.Fatalf("LoadClient: %v", err)
	}
	if cfg.APIURL != "https://shop.example.com" || cfg.Tokens.Store != StoreRedis || cfg.Tokens.Redis.Addr != "cache:6379" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadClient_UnknownStore(t *testing.T) {
	t.Setenv("TOKEN_STORE", "sqlite")
	if _, err := LoadClient(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown token store")
	}
}

func TestLoadAPI_SecretRequiredOutsideDevelopment(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "development")
	cfg, err := LoadAPI(context.Background())
	if err != nil || cfg.JWTSecret == "" {
		t.Fatalf("development must fall back to a local secret: %+v, %v", cfg, err)
	}

	t.Setenv("ENV", "production")
	if _, err := LoadAPI(context.Background()); err == nil {
		t.Fatalf("expected an error without JWT_SECRET in production")
	}
}

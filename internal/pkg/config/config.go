package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Token store backends selectable through TOKEN_STORE.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

// Client is the configuration of the storefront client (cmd/shopctl).
type Client struct {
	APIURL    string        `env:"STOREFRONT_API_URL, default=http://localhost:8000"`
	Timeout   time.Duration `env:"STOREFRONT_TIMEOUT, default=15s"`
	LogLevel  string        `env:"LOG_LEVEL,          default=warn"`
	LogPretty bool          `env:"LOG_PRETTY,         default=true"`

	Tokens TokenConfig
}

// TokenConfig selects where the session token pair is persisted.
type TokenConfig struct {
	Store   string        `env:"TOKEN_STORE,   default=file"`
	File    string        `env:"TOKEN_FILE"`
	Profile string        `env:"TOKEN_PROFILE, default=default"`
	TTL     time.Duration `env:"TOKEN_TTL,     default=168h"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// API is the configuration of the reference API (cmd/mockapi).
type API struct {
	Port        string `env:"PORT,         default=8000"`
	Env         string `env:"ENV,          default=development"`
	JWTSecret   string `env:"JWT_SECRET"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	LogPretty   bool   `env:"LOG_PRETTY,   default=false"`
	MailWorkers int    `env:"MAIL_WORKERS, default=2"`

	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=30m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`

	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin1234"`
}

// LoadClient reads the client configuration from environment variables.
func LoadClient(ctx context.Context) (*Client, error) {
	var cfg Client
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: load client configuration: %w", err)
	}
	switch cfg.Tokens.Store {
	case StoreMemory, StoreFile, StoreRedis, StoreMongo:
	default:
		return nil, fmt.Errorf("config: unknown TOKEN_STORE %q", cfg.Tokens.Store)
	}
	return &cfg, nil
}

// LoadAPI reads the reference API configuration from environment variables.
// JWT_SECRET is required outside development.
func LoadAPI(ctx context.Context) (*API, error) {
	var cfg API
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: load api configuration: %w", err)
	}
	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return nil, fmt.Errorf("config: JWT_SECRET is required in %s", cfg.Env)
		}
		cfg.JWTSecret = "development-secret"
	}
	if cfg.MailWorkers < 1 {
		cfg.MailWorkers = 1
	}
	return &cfg, nil
}

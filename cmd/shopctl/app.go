package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/core/store"
	mongodb "github.com/99minutos/storefront/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/storefront/internal/infrastructure/db/redis"
	"github.com/99minutos/storefront/internal/infrastructure/httpclient"
	"github.com/99minutos/storefront/internal/infrastructure/tokenstore"
	"github.com/99minutos/storefront/internal/pkg/config"
	"github.com/99minutos/storefront/pkg/logger"
)

// app holds the stores shared by every subcommand of one invocation.
type app struct {
	out     io.Writer
	json    bool
	auth    *store.AuthStore
	cart    *store.CartStore
	orders  *store.OrderStore
	catalog *store.Catalog
	closeFn func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Client, out io.Writer, jsonOut bool) (*app, error) {
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: os.Stderr, Service: "shopctl"})

	tokens, closeFn, err := openTokenStore(ctx, cfg.Tokens)
	if err != nil {
		return nil, err
	}

	client, err := httpclient.New(httpclient.Config{BaseURL: cfg.APIURL, Timeout: cfg.Timeout}, tokens, logger.Component("httpclient"))
	if err != nil {
		_ = closeFn(ctx)
		return nil, err
	}

	return &app{
		out:     out,
		json:    jsonOut,
		auth:    store.NewAuthStore(client, tokens, logger.Component("auth")),
		cart:    store.NewCartStore(client, logger.Component("cart")),
		orders:  store.NewOrderStore(client, logger.Component("orders")),
		catalog: store.NewCatalog(client),
		closeFn: closeFn,
	}, nil
}

func openTokenStore(ctx context.Context, cfg config.TokenConfig) (ports.TokenStore, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		return tokenstore.NewMemory(), noop, nil
	case config.StoreFile:
		path := cfg.File
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, nil, fmt.Errorf("locate config dir: %w", err)
			}
			path = filepath.Join(dir, "storefront", cfg.Profile+".json")
		}
		return tokenstore.NewFile(path), noop, nil
	case config.StoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisdb.NewTokenStore(client, cfg.Profile, cfg.TTL), func(context.Context) error { return client.Close() }, nil
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return mongodb.NewTokenStore(db, cfg.Profile), client.Disconnect, nil
	}
	return nil, nil, fmt.Errorf("unknown token store %q", cfg.Store)
}

func (a *app) close(ctx context.Context) error {
	if a == nil || a.closeFn == nil {
		return nil
	}
	return a.closeFn(ctx)
}

// print writes v as indented JSON when --json is set, otherwise runs text.
func (a *app) print(v any, text func(w io.Writer)) error {
	if a.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(a.out)
	return nil
}

// Command mockapi serves the in-memory storefront reference API.
//
// @title                       Storefront reference API
// @version                     1.0
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/99minutos/storefront/internal/api"
	"github.com/99minutos/storefront/internal/api/handler"
	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/service"
	"github.com/99minutos/storefront/internal/infrastructure/db/memory"
	"github.com/99minutos/storefront/internal/infrastructure/queue"
	"github.com/99minutos/storefront/internal/pkg/config"
	"github.com/99minutos/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ── Configuration ────────────────────────────────────────────────────
	cfg, err := config.LoadAPI(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "mockapi"})

	// ── Storage ──────────────────────────────────────────────────────────
	store := memory.New()
	if err := store.Seed(ctx, memory.SeedAccount{
		Email:    cfg.AdminEmail,
		FullName: "Store Admin",
		Password: cfg.AdminPassword,
		Role:     domain.RoleAdmin,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed store")
	}

	// ── Mail outbox ──────────────────────────────────────────────────────
	outbox := queue.NewDispatcher(cfg.MailWorkers, queue.NewLogSender(logger.Component("mail")), log)
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	outbox.Start(workerCtx)

	// ── Services ─────────────────────────────────────────────────────────
	authService := service.NewAuthService(store, outbox, service.TokenConfig{
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	}, logger.Component("auth"))

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Catalog: service.NewCatalogService(store),
		Cart:    service.NewCartService(store, store),
		Orders:  service.NewOrderService(store, store, outbox, logger.Component("orders")),
		Checks:  map[string]handler.Check{"mail_outbox": outbox.Check},
		Log:     log,
	})

	// ── Serve ────────────────────────────────────────────────────────────
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("reference API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	cancelWorkers()
	outbox.Wait()
}

// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

// Command api is the entry point for the Shopora storefront API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis.
//  4. Connect to PostgreSQL and run migrations (CART_BACKEND=postgres only).
//  5. Select the cart snapshot and session token repositories.
//  6. Select the auth collaborator (mock or remote HTTP).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lamnguyen/shopora/internal/api"
	"github.com/lamnguyen/shopora/internal/auth"
	"github.com/lamnguyen/shopora/internal/cart"
	"github.com/lamnguyen/shopora/internal/catalog"
	"github.com/lamnguyen/shopora/internal/platform/config"
	"github.com/lamnguyen/shopora/internal/platform/constants"
	"github.com/lamnguyen/shopora/internal/platform/migration"
	pgstore "github.com/lamnguyen/shopora/internal/platform/postgres"
	redisstore "github.com/lamnguyen/shopora/internal/platform/redis"
	"github.com/lamnguyen/shopora/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Shopora] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("cart_backend", cfg.CartBackend),
		slog.String("auth_backend", cfg.AuthBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. PostgreSQL + Migrations (postgres cart backend only) ───────────
	var pool *pgxpool.Pool
	if cfg.CartBackend == config.BackendPostgres {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 5. Storage Selection ──────────────────────────────────────────────
	var snapshots cart.SnapshotRepository
	switch cfg.CartBackend {
	case config.BackendPostgres:
		snapshots = cart.NewPostgresSnapshotRepository(pool)
	case config.BackendMemory:
		snapshots = cart.NewMemorySnapshotRepository()
	default:
		snapshots = cart.NewRedisSnapshotRepository(rdb)
	}

	tokens := auth.NewRedisTokenRepository(rdb)

	// ── 6. Auth Collaborator ──────────────────────────────────────────────
	var authClient auth.Client
	if cfg.AuthBackend == config.AuthBackendHTTP {
		authClient = auth.NewHTTPClient(cfg.AuthBaseURL)
	} else {
		jwtSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
		must(log, err, "initialize token service")

		authClient, err = auth.NewMockClient(jwtSvc)
		must(log, err, "initialize mock auth client")
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	catalogService := catalog.NewService(catalog.SeedProducts(), log)
	catalogHandler := catalog.NewHandler(catalogService)

	cartService := cart.NewService(snapshots, log)
	cartHandler := cart.NewHandler(cartService, catalogService)

	authService := auth.NewService(authClient, tokens, log)
	authHandler := auth.NewHandler(authService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Cart:      cartHandler,
		Catalog:   catalogHandler,
	}

	server := api.NewServer(context.Background(), cfg, log, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

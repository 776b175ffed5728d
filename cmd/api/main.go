// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Command api is the entry point for the PageTurn catalog HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Connect to Redis.
//  6. Load the token verifier and the mail sender.
//  7. Wire stores, services and HTTP handlers.
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

	"github.com/NavodCaldera/online-bookstore-sub000/internal/api"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/category"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/newsletter"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/config"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/constants"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/mailer"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/middleware"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/migration"
	pgstore "github.com/NavodCaldera/online-bookstore-sub000/internal/platform/postgres"
	redisstore "github.com/NavodCaldera/online-bookstore-sub000/internal/platform/redis"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
)

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Misconfiguration should fail fast rather than hang.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 6. Token Verification & Mail ──────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "load token verifier")

	var sender mailer.Sender = mailer.NewLog(log)
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPSender)
	} else {
		log.Warn("smtp_not_configured", slog.String("fallback", "log"))
	}

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	bookStore := book.NewPostgresStore(pool)
	categoryStore := category.NewPostgresStore(pool)

	catalogService := book.NewService(bookStore, log)
	inventory := book.NewInventory(bookStore, categoryStore, log)
	categoryService := category.NewService(categoryStore, bookStore, log)
	newsletterService := newsletter.NewService(
		newsletter.NewPostgresStore(pool),
		newsletter.NewRedisTokenStore(rdb),
		sender,
		cfg.PublicBaseURL,
		log,
	)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(rootCtx)

	server := api.NewServer(cfg, log, verifier, limiter, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Books:      book.NewHandler(catalogService, inventory),
		Categories: category.NewHandler(categoryService),
		Newsletter: newsletter.NewHandler(newsletterService),
	})

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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		return
	}

	log.Info("server_stopped")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

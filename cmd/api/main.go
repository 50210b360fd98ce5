// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Daybook HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and run migrations (when DATABASE_URL is set).
//  4. Connect to Redis (when REDIS_URL is set).
//  5. Wire the daybook service and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/daybook/internal/api"
	"github.com/taibuivan/daybook/internal/daybook"
	"github.com/taibuivan/daybook/internal/platform/config"
	"github.com/taibuivan/daybook/internal/platform/constants"
	"github.com/taibuivan/daybook/internal/platform/migration"
	pgstore "github.com/taibuivan/daybook/internal/platform/postgres"
	redisstore "github.com/taibuivan/daybook/internal/platform/redis"
)

func main() {
	// 1. Logger
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// 2. Configuration
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("history", cfg.HistoryEnabled()),
		slog.Bool("cache", cfg.CacheEnabled()),
		slog.Bool("links", cfg.LinkSecret != ""),
	)

	// Use a 30s deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}

	// 3. PostgreSQL (optional)
	var runs daybook.RunRepository
	if cfg.HistoryEnabled() {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.ServerConns, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		runs = daybook.NewPostgresRepository(pool)
		health.CheckDatabase = pingPostgres(pool)
	}

	// 4. Redis (optional)
	var cache daybook.DocumentCache
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		cache = daybook.NewRedisCache(rdb, cfg.CacheTTL)
		health.CheckCache = pingRedis(rdb)
	}

	// 5. Domain Wiring
	service := daybook.NewService(daybook.Settings{
		Layout:   cfg.Layout,
		Defaults: daybook.Request{StartDate: cfg.StartDate, Weeks: cfg.Weeks, Title: cfg.Title},
		BaseURL:  cfg.PublicBaseURL,
		LinkTTL:  cfg.LinkTTL,
	}, runs, cache, daybook.NewLinkSigner(cfg.LinkSecret, constants.LinkIssuer), log)

	liveness, readiness := api.NewHealthHandlers(health, log)

	// 6. HTTP Server
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Daybook:   daybook.NewHandler(service),
	})

	// Graceful Shutdown
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

// newLogger builds the JSON logger shared by every log line of the process.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))

	slog.SetDefault(log)
	return log
}

func pingPostgres(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		return pgstore.Ping(ctx, pool)
	}
}

func pingRedis(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return redisstore.Ping(ctx, client)
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

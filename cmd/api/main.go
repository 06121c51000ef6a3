package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"clubform/internal/app"
	"clubform/internal/config"
	"clubform/internal/database"
	"clubform/internal/domain/application"
	apphttp "clubform/internal/http"
	"clubform/internal/http/handlers"
	"clubform/internal/http/metrics"
	httpmw "clubform/internal/http/middleware"
	"clubform/internal/http/response"
	"clubform/internal/observability"
	"clubform/internal/repository/memory"
	"clubform/internal/repository/mongodb"
	"clubform/internal/repository/postgres"
	"clubform/internal/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := observability.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	applicationRepo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store failed", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	limiter, closeLimiter, err := openLimiter(ctx, cfg, logger)
	if err != nil {
		logger.Error("open rate limiter failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLimiter()

	trustedProxies, err := httpmw.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Error("parse TRUSTED_PROXIES failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	applicationService := app.NewApplicationService(applicationRepo, cfg.EmailSuffix, logger)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, collector, logger),
		CatalogHandler:     handlers.NewCatalogHandler(applicationService),
		HealthHandler:      handlers.NewHealthHandler(applicationService),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		Metrics:            collector,
		Logger:             logger,
		SubmitLimiter:      limiter,
		SubmitPerMinute:    cfg.SubmitRateLimitPerMin,
		TrustedProxies:     trustedProxies,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started", slog.String("addr", server.Addr), slog.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (application.Repository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn("using in-memory store, applications are lost on restart")
		return memory.NewApplicationRepository(), func() {}, nil
	case config.DriverSQLite:
		db, err := database.NewSQLite(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewApplicationRepository(db), func() { _ = db.Close() }, nil
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, database.PostgresConfig{
			DSN:             cfg.DatabaseURL,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxIdle:     cfg.DBConnMaxIdle,
			ConnMaxLifetime: cfg.DBConnMaxLife,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewApplicationRepository(db), func() { _ = db.Close() }, nil
	case config.DriverMongo:
		client, db, err := database.NewMongo(ctx, cfg.DatabaseURL, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		repo := mongodb.NewApplicationRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

func openLimiter(ctx context.Context, cfg config.Config, logger *slog.Logger) (httpmw.Limiter, func(), error) {
	if cfg.RedisURL == "" {
		return httpmw.NewRateLimiter(), func() {}, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("using redis rate limiter")
	return httpmw.NewRedisLimiter(client, "clubform:ratelimit").WithLogger(logger), func() { _ = client.Close() }, nil
}

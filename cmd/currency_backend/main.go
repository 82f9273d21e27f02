package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/currency_converter/internal/adapters/mailer"
	"github.com/SscSPs/currency_converter/internal/adapters/ratesapi"
	"github.com/SscSPs/currency_converter/internal/adapters/redisstore"
	"github.com/SscSPs/currency_converter/internal/core/quota"
	"github.com/SscSPs/currency_converter/internal/core/ratecache"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/SscSPs/currency_converter/internal/handlers"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/platform/metrics"
	"github.com/SscSPs/currency_converter/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/SscSPs/currency_converter/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

// @title Currency Converter API
// @version 1.0
// @description Live and historical exchange rates, conversions and per-user conversion history.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		if err := runMigrations(cfg, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	redisClient, store, err := newRateStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize rate cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}
	rateCache := ratecache.New(store, ratecache.WithObserver(m), ratecache.WithLogger(logger))

	quotaTracker := quota.NewTracker()
	provider := ratesapi.NewClient(cfg.CurrencyAPIURL, cfg.CurrencyAPIKey, cfg.CurrencyAPITimeout,
		ratesapi.WithQuotaRecorder(quotaTracker),
		ratesapi.WithMetrics(m),
		ratesapi.WithLogger(logger),
	)

	mail, err := mailer.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize mailer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	events := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer events.Close()

	container := services.NewServiceContainer(cfg, services.Dependencies{
		Repos:     pgsql.NewRepositoryProvider(dbPool),
		Provider:  provider,
		RateCache: rateCache,
		Quota:     quotaTracker,
		Mailer:    mail,
		Events:    events,
		Observer:  m,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(
		gin.Recovery(),
		middleware.StructuredLoggingMiddleware(logger),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Guest-ID", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.HTTPMetrics(m),
		middleware.RequestLogger(container.RequestLog),
		middleware.PosthogMiddleware(events),
	)

	handlers.RegisterRoutes(r, cfg, container, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	container.RequestLog.Wait()

	logger.Info("Server exited")
}

// newRateStore returns an in-process LRU store, layered over redis when REDIS_URL is set.
func newRateStore(cfg *config.Config, logger *slog.Logger) (*redis.Client, ratecache.Store, error) {
	local, err := ratecache.NewLRUStore(cfg.RateCacheMaxEntries)
	if err != nil {
		return nil, nil, err
	}
	if cfg.RedisURL == "" {
		return nil, local, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, rate cache stays in-process", slog.String("error", err.Error()))
		return nil, local, nil
	}
	logger.Info("Rate cache backed by redis")
	remote := redisstore.New(client, redisstore.DefaultRetention, logger)
	return client, &ratecache.TieredStore{Local: local, Remote: remote}, nil
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// pgx/v5/stdlib keeps migrations on the same driver as the pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		logger.Warn("Error closing migrate instance", slog.Any("source_error", sourceErr), slog.Any("db_error", dbErr))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

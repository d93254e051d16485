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
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/paperthread/storefront-backend/api/routes"
	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/internal/catalog"
	"github.com/paperthread/storefront-backend/internal/cron"
	"github.com/paperthread/storefront-backend/internal/orders"
	"github.com/paperthread/storefront-backend/pkg/config"
	"github.com/paperthread/storefront-backend/pkg/logger"
	"github.com/paperthread/storefront-backend/pkg/metrics"
	"github.com/paperthread/storefront-backend/pkg/printful"
	"github.com/paperthread/storefront-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	promRegistry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)
	providerMetrics := metrics.NewProviderMetrics(promRegistry)
	jobMetrics := metrics.NewJobMetrics(promRegistry)

	providerClient, err := printful.New(cfg.Printful, providerMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create provider client", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(providerClient, redisClient, cfg.Catalog.CacheTTL, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore := cart.NewStore(cfg.Cart.SessionTTL)
	cartService, err := cart.NewService(catalogService, cartStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(providerClient, cartService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	maintenance, err := buildMaintenance(cfg, logg, redisClient, catalogService, cartStore, jobMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create maintenance runner", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := maintenance.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(ctx, "maintenance runner stopped unexpectedly", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:         cfg,
			Logger:         logg,
			Cache:          redisClient,
			HTTPMetrics:    httpMetrics,
			MetricsHandler: promRegistry,
			Catalog:        catalogService,
			Cart:           cartService,
			Orders:         orderService,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := multierr.Append(server.Shutdown(shutdownCtx), <-serverErr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "error during shutdown", err)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server shutting down gracefully")
}

func buildMaintenance(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	catalogService catalog.Service,
	cartStore *cart.Store,
	jobMetrics *metrics.JobMetrics,
) (*cron.Service, error) {
	warmJob, err := cron.NewCatalogWarmJob(catalogService, logg)
	if err != nil {
		return nil, err
	}
	sweepJob, err := cron.NewCartSweepJob(cartStore, logg)
	if err != nil {
		return nil, err
	}
	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey("maintenance"), cfg.Catalog.WarmInterval)
	if err != nil {
		return nil, err
	}
	return cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(warmJob, sweepJob),
		Lock:     lock,
		Metrics:  jobMetrics,
		Interval: cfg.Catalog.WarmInterval,
	})
}

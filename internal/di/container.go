// Package di provides a centralized dependency injection container.
// Dependencies are constructed once at startup and injected explicitly;
// nothing is reached through package-level globals.
package di

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seograph-backend/interfaces/http/rest"
	"seograph-backend/internal/config"
	"seograph-backend/internal/observability"
	"seograph-backend/internal/repository/sqlite"
	"seograph-backend/internal/service/cluster"
	"seograph-backend/internal/service/explorer"
)

// Container holds all initialized application dependencies.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *observability.Collector
	Tracing  *observability.TracerProvider
	Store    *sqlite.Store
	Service  *cluster.Service
	Explorer *explorer.Controller
	Handler  http.Handler

	shutdownFunctions []func(context.Context) error
}

// InitializeContainer builds the dependency graph in order: config,
// logging, observability, storage, services, HTTP.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	logger, err := provideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	c.Logger = logger

	c.Metrics = provideMetrics(cfg)

	if cfg.Observability.TracingEnabled {
		tracing, err := observability.InitTracing(ctx, observability.TracingConfig{
			ServiceName: "seograph-backend",
			Environment: string(cfg.Environment),
			Endpoint:    cfg.Observability.TracingEndpoint,
			SampleRate:  cfg.Observability.TracingSample,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing tracing: %w", err)
		}
		c.Tracing = tracing
		c.onShutdown(tracing.Shutdown)
	}

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	c.Store = store
	c.onShutdown(func(context.Context) error { return store.Close() })

	c.Service = cluster.NewService(store, logger, c.Metrics)

	notifier := cluster.NewZapNotifier(logger)
	c.Explorer = explorer.NewController(c.Service, notifier, logger, c.Metrics)

	c.Handler = rest.NewRouter(c.Service, c.Explorer, logger, c.Metrics, cfg.CORSOrigins).Setup()

	return c, nil
}

// Shutdown releases container resources in reverse initialization order.
func (c *Container) Shutdown(ctx context.Context) error {
	var firstErr error
	for i := len(c.shutdownFunctions) - 1; i >= 0; i-- {
		if err := c.shutdownFunctions[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Container) onShutdown(fn func(context.Context) error) {
	c.shutdownFunctions = append(c.shutdownFunctions, fn)
}

// provideLogger builds the zap logger for the configured environment.
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zapCfg.Build()
}

// provideMetrics builds the prometheus collector.
func provideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.Observability.MetricsNamespace)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/config"
	"github.com/feral-file/ff-canvas/internal/logger"
	"github.com/feral-file/ff-canvas/internal/metrics"
	"github.com/feral-file/ff-canvas/internal/providers/jetstream"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventRelayConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-relay",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Relay")

	// Connect to database
	db, err := store.OpenDatabase(cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewStore(db)

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))

	// Register metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(cfg.Metrics.Namespace)
	if err := m.Register(registry); err != nil {
		logger.FatalCtx(ctx, "Failed to register metrics", zap.Error(err))
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
			}
		}()
		logger.InfoCtx(ctx, "Serving metrics", zap.String("address", cfg.MetricsAddr), zap.String("path", cfg.Metrics.Path))
	}

	// Initialize event relay
	relayConfig := &sweeper.EventRelayConfig{
		BatchSize:            cfg.Relay.BatchSize,
		WorkerPoolSize:       cfg.Relay.Worker.WorkerPoolSize,
		IdleInterval:         cfg.Relay.IdleInterval,
		RetryInitialInterval: cfg.Relay.RetryInitialInterval,
		RetryMaxInterval:     cfg.Relay.RetryMaxInterval,
		RetryMaxElapsedTime:  cfg.Relay.RetryMaxElapsedTime,
	}
	relay := sweeper.NewEventRelay(relayConfig, dataStore, publisher, adapter.NewClock(), m)

	logger.InfoCtx(ctx, "Initialized event relay",
		zap.Int("batch_size", cfg.Relay.BatchSize),
		zap.Int("worker_pool_size", cfg.Relay.Worker.WorkerPoolSize),
		zap.Duration("idle_interval", cfg.Relay.IdleInterval),
	)

	// Start the relay in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := relay.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the relay
	cancel()

	// Give the relay time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := relay.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err)
		}
	}

	logger.InfoCtx(shutdownCtx, "Event relay stopped")
}

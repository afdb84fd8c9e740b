package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/api/middleware"
	"github.com/feral-file/ff-canvas/internal/api/server"
	"github.com/feral-file/ff-canvas/internal/canvas"
	"github.com/feral-file/ff-canvas/internal/catalog"
	"github.com/feral-file/ff-canvas/internal/config"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/logger"
	"github.com/feral-file/ff-canvas/internal/metrics"
	"github.com/feral-file/ff-canvas/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Canvas API")

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
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if err := store.Migrate(ctx, db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Register metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	m := metrics.New(cfg.Metrics.Namespace)
	if err := m.Register(registry); err != nil {
		logger.FatalCtx(ctx, "Failed to register metrics", zap.Error(err))
	}

	service := canvas.NewService(cfg.Policy.CanvasConfig(), dataStore, clock, jsonAdapter, adapter.NewJCS(), m)

	// Seed the trait catalog
	if cfg.Catalog.SeedPath != "" {
		seed, err := catalog.NewSeedLoader(fs, jsonAdapter).Load(cfg.Catalog.SeedPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load trait seed",
				zap.Error(err),
				zap.String("path", cfg.Catalog.SeedPath))
		}

		creator := cfg.Catalog.SeedCreator
		if creator == "" {
			creator = string(cfg.Policy.CanvasConfig().Fees.FeeSink)
		}
		created, err := catalog.Seed(ctx, service.DefineTrait, domain.NewCall(creator, clock.Now().Unix()), seed)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to seed trait catalog", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Seeded trait catalog",
			zap.String("path", cfg.Catalog.SeedPath),
			zap.Int("created", created),
			zap.Int("total", len(seed.Traits)))
	} else {
		logger.WarnCtx(ctx, "Trait seed path not configured, the catalog starts empty")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MetricsPath:  cfg.Metrics.Path,
	}
	authConfig := middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	}

	// Create and start server
	srv := server.New(serverConfig, service, clock, authConfig, registry)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

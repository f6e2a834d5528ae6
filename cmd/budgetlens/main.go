package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"budgetlens/internal/amqp"
	"budgetlens/internal/analytics"
	budgetmem "budgetlens/internal/budget/memory"
	"budgetlens/internal/config"
	"budgetlens/internal/history"
	histmem "budgetlens/internal/history/memory"
	apphttp "budgetlens/internal/http"
	applog "budgetlens/internal/log"
	"budgetlens/internal/services"
	"budgetlens/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	classifier := analytics.NewClassifier(cfg.LivingGroups, cfg.FixedGroups, cfg.CreditCardGroups)

	// Choose the history persistence backend.
	var histStorage history.Storage
	switch cfg.HistoryBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite storage", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		histStorage = repo
		logger.Info("Initialized SQLite history backend", "path", cfg.SQLiteDBPath)
	default:
		histStorage = histmem.New()
		logger.Info("Initialized in-memory history backend")
	}
	store := history.NewStore(histStorage)

	// The budget backend stands in for the external API; seeded from disk.
	budgetStore := budgetmem.NewFromFiles(cfg.SeedDataDir)
	logger.Info("Initialized budget backend", "seed_dir", cfg.SeedDataDir)

	// AMQP snapshot events are optional.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without snapshot export", "error", err)
		} else {
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	dashboard := services.NewDashboardService(budgetStore, classifier, cfg.CacheTTL)
	snapshots := services.NewSnapshotService(budgetStore, store, amqpClient)
	defer snapshots.Close()

	srv := apphttp.NewServer(":"+cfg.Port, dashboard, snapshots, cfg.TrendMonths)
	srv.Handler = applog.Middleware(logger.WithComponent(applog.ComponentHTTP))(srv.Handler)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting budgetlens server", "port", cfg.Port, "history_backend", cfg.HistoryBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

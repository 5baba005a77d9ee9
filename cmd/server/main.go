package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "rentdesk-backend/internal/api/http"
	"rentdesk-backend/internal/bootstrap"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/jobs"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/scheduler"
	"rentdesk-backend/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentDesk backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "store", cfg.Store.Type, "timezone", cfg.Shop.Timezone)

	// Amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	files, err := bootstrap.NewFileStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	logger.Info("Using local file storage", "upload_dir", cfg.Storage.UploadDir, "base_url", cfg.Storage.BaseURL)

	loc := cfg.Location()
	svcs := bootstrap.NewServices(store, service.NewSystemClock(loc))

	router := apihttp.NewRouter(svcs.API(files), apihttp.Options{
		Location:       loc,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})

	var cron *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cron, err = scheduler.NewScheduler(jobs.NewJobRunner(svcs.Jobs(), cfg), loc)
		if err != nil {
			logger.Error("Failed to configure scheduler", "error", err)
			log.Fatalf("Failed to configure scheduler: %v", err)
		}
		cron.Start()
	}

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	if cron != nil {
		cron.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

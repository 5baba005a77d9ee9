// Package bootstrap assembles the store, services and HTTP collaborators from
// configuration. The server, the cron runner and shopctl share it.
package bootstrap

import (
	"context"
	"fmt"

	apihttp "rentdesk-backend/internal/api/http"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/jobs"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/repository/memory"
	"rentdesk-backend/internal/repository/postgres"
	"rentdesk-backend/internal/service"
	"rentdesk-backend/internal/storage"
)

// OpenStore opens the configured backend. PostgreSQL databases are migrated
// before use.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Type {
	case config.StorePostgres:
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := postgres.Open(cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Database connection established")
		return postgres.NewStore(db), nil
	case config.StoreMemory:
		if cfg.Store.SnapshotPath == "" {
			logger.Info("Using in-memory store without snapshot")
			return memory.NewStore(), nil
		}
		logger.Info("Using in-memory store", "snapshot", cfg.Store.SnapshotPath)
		return memory.Open(cfg.Store.SnapshotPath)
	default:
		return nil, fmt.Errorf("unsupported store type %q", cfg.Store.Type)
	}
}

// Services is every service built over one store.
type Services struct {
	Customers service.CustomerService
	Inventory service.InventoryService
	Rentals   service.RentalService
	Sales     service.SaleService
	Payments  service.PaymentService
	Notes     service.NoteService
	Reports   service.ReportService
}

func NewServices(store repository.Store, clock service.Clock) *Services {
	return &Services{
		Customers: service.NewCustomerService(store),
		Inventory: service.NewInventoryService(store),
		Rentals:   service.NewRentalService(store, clock),
		Sales:     service.NewSaleService(store, clock),
		Payments:  service.NewPaymentService(store, clock),
		Notes:     service.NewNoteService(store),
		Reports:   service.NewReportService(store, clock),
	}
}

// API returns the collaborators for the HTTP router.
func (s *Services) API(files storage.FileStore) apihttp.Services {
	return apihttp.Services{
		Customers: s.Customers,
		Inventory: s.Inventory,
		Rentals:   s.Rentals,
		Sales:     s.Sales,
		Payments:  s.Payments,
		Notes:     s.Notes,
		Reports:   s.Reports,
		Files:     files,
	}
}

func (s *Services) Jobs() *jobs.Services {
	return &jobs.Services{Rental: s.Rentals, Report: s.Reports}
}

func NewFileStore(cfg *config.Config) (*storage.LocalStorage, error) {
	return storage.NewLocalStorage(storage.Config{
		UploadDir:    cfg.Storage.UploadDir,
		BaseURL:      cfg.Storage.BaseURL,
		MaxBytes:     cfg.MaxUploadBytes(),
		AllowedTypes: cfg.Storage.AllowedTypes,
	})
}

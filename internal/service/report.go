package service

import (
	"context"
	"fmt"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type reportService struct {
	store repository.Store
	clock Clock
}

func NewReportService(store repository.Store, clock Clock) ReportService {
	return &reportService{store: store, clock: clock}
}

type ledger struct {
	rentals  []domain.Rental
	sales    []domain.Sale
	payments []domain.Payment
}

func (s *reportService) load(ctx context.Context) (*ledger, error) {
	repos := s.store.Repositories()
	rentals, err := repos.Rentals.List(ctx, domain.RentalFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	sales, err := repos.Sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	payments, err := repos.Payments.List(ctx, domain.PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return &ledger{rentals: rentals, sales: sales, payments: payments}, nil
}

func (s *reportService) GetReport(ctx context.Context, window domain.Window) (*domain.ReportSummary, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(window, s.clock.Now(), l.rentals, l.sales, l.payments)
	return &summary, nil
}

// GetReports returns the today, week and month summaries from one read.
func (s *reportService) GetReports(ctx context.Context) ([]domain.ReportSummary, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]domain.ReportSummary, 0, len(domain.Windows))
	for _, w := range domain.Windows {
		out = append(out, domain.Summarize(w, now, l.rentals, l.sales, l.payments))
	}
	return out, nil
}

func (s *reportService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Transactions(l.payments, l.rentals, l.sales), nil
}

func (s *reportService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	repos := s.store.Repositories()
	customers, err := repos.Customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	items, err := repos.Items.Count(ctx)
	if err != nil {
		return nil, err
	}
	open, err := repos.Rentals.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := repos.Payments.List(ctx, domain.PaymentFilter{})
	if err != nil {
		return nil, err
	}
	stats := domain.Dashboard(s.clock.Now(), customers, items, open, payments)
	return &stats, nil
}

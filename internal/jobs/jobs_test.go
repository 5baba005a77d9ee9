package jobs_test

import (
	"context"
	"errors"
	"testing"

	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/jobs"
	"rentdesk-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, in service.CreateRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ReturnRentalItems(ctx context.Context, rentalID string, itemIDs []string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id string) (*service.RentalDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalDetail), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) MarkOverdueRentals(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetReport(ctx context.Context, window domain.Window) (*domain.ReportSummary, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSummary), args.Error(1)
}
func (m *MockReportService) GetReports(ctx context.Context) ([]domain.ReportSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ReportSummary), args.Error(1)
}
func (m *MockReportService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockReportService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func newRunner() (*jobs.JobRunner, *MockRentalService, *MockReportService) {
	rentals := new(MockRentalService)
	reports := new(MockReportService)
	cfg := &config.Config{}
	jr := jobs.NewJobRunner(&jobs.Services{Rental: rentals, Report: reports}, cfg)
	return jr, rentals, reports
}

func TestMarkOverdueRentals(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		jr, rentals, _ := newRunner()
		rentals.On("MarkOverdueRentals", mock.Anything).Return([]string{"r1", "r2"}, nil)

		assert.True(t, jr.MarkOverdueRentals())
		rentals.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		jr, rentals, _ := newRunner()
		rentals.On("MarkOverdueRentals", mock.Anything).Return(nil, errors.New("connection refused"))

		assert.False(t, jr.MarkOverdueRentals())
	})

	t.Run("PanicIsRecovered", func(t *testing.T) {
		jr, rentals, _ := newRunner()
		rentals.On("MarkOverdueRentals", mock.Anything).Run(func(mock.Arguments) { panic("boom") })

		assert.NotPanics(t, func() {
			assert.False(t, jr.MarkOverdueRentals())
		})
	})
}

func TestRunAllNightlyJobs(t *testing.T) {
	jr, rentals, reports := newRunner()
	rentals.On("MarkOverdueRentals", mock.Anything).Return([]string{}, nil)
	reports.On("GetReport", mock.Anything, domain.WindowToday).Return(&domain.ReportSummary{
		Window:           domain.WindowToday,
		RentGenerated:    decimal.NewFromInt(750),
		SalesRevenue:     decimal.Zero,
		PaymentsReceived: decimal.NewFromInt(500),
		DueFromRent:      decimal.NewFromInt(250),
	}, nil)
	reports.On("GetDashboard", mock.Anything).Return(&domain.DashboardStats{ItemsRented: 3}, nil)

	assert.True(t, jr.RunAllNightlyJobs())
	rentals.AssertExpectations(t)
	reports.AssertExpectations(t)
}

package domain_test

import (
	"testing"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDec(t *testing.T, want int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %d, got %s", msg, want, got)
}

func TestParseWindow(t *testing.T) {
	for in, want := range map[string]domain.Window{"today": domain.WindowToday, "Week": domain.WindowWeek, " month ": domain.WindowMonth, "daily": domain.WindowToday} {
		w, err := domain.ParseWindow(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, w)
	}
	_, err := domain.ParseWindow("year")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWindow_Range(t *testing.T) {
	now := time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

	from, to := domain.WindowToday.Range(now)
	assert.Equal(t, date(2026, 10, 14), from)
	assert.Equal(t, date(2026, 10, 15), to)

	from, to = domain.WindowWeek.Range(now)
	assert.Equal(t, date(2026, 10, 8), from)
	assert.Equal(t, date(2026, 10, 15), to)

	from, to = domain.WindowMonth.Range(now)
	assert.Equal(t, date(2026, 10, 1), from)
	assert.Equal(t, date(2026, 11, 1), to)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)

	rentals := []domain.Rental{
		{ID: "today", RentDate: now, TotalAmount: dec(750)},
		{ID: "yday", RentDate: yesterday, TotalAmount: dec(300)},
		{ID: "old", RentDate: lastMonth, TotalAmount: dec(1000)},
	}
	sales := []domain.Sale{
		{ID: "s1", Date: now, TotalAmount: dec(600)},
		{ID: "s2", Date: lastMonth, TotalAmount: dec(50)},
	}
	payments := []domain.Payment{
		{ID: "p1", RentalID: strPtr("today"), Amount: dec(500), Date: now},
		{ID: "p2", SaleID: strPtr("s1"), Amount: dec(600), Date: now},
		{ID: "p3", RentalID: strPtr("yday"), Amount: dec(400), Date: yesterday},
		{ID: "p4", RentalID: strPtr("old"), Amount: dec(100), Date: lastMonth},
	}

	t.Run("Today excludes yesterday", func(t *testing.T) {
		s := domain.Summarize(domain.WindowToday, now, rentals, sales, payments)
		assertDec(t, 750, s.RentGenerated, "rent")
		assertDec(t, 600, s.SalesRevenue, "sales")
		assertDec(t, 1100, s.PaymentsReceived, "payments")
		assertDec(t, 250, s.DueFromRent, "due")
	})

	t.Run("Week includes yesterday and clamps overpayment", func(t *testing.T) {
		s := domain.Summarize(domain.WindowWeek, now, rentals, sales, payments)
		assertDec(t, 1050, s.RentGenerated, "rent")
		assertDec(t, 1500, s.PaymentsReceived, "payments")
		// yday is overpaid by 100, which must not offset today's due
		assertDec(t, 250, s.DueFromRent, "due")
	})

	t.Run("Month excludes last month", func(t *testing.T) {
		s := domain.Summarize(domain.WindowMonth, now, rentals, sales, payments)
		assertDec(t, 1050, s.RentGenerated, "rent")
		assertDec(t, 600, s.SalesRevenue, "sales")
	})
}

func TestTransactions(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	rentals := []domain.Rental{{ID: "abcdef123", CustomerName: "John Doe"}}
	sales := []domain.Sale{{ID: "xyz987654", CustomerName: "Walk-in"}}
	payments := []domain.Payment{
		{ID: "p1", RentalID: strPtr("abcdef123"), Amount: dec(10), Date: now.Add(-time.Hour)},
		{ID: "p2", SaleID: strPtr("xyz987654"), Amount: dec(20), Date: now},
		{ID: "p3", Amount: dec(5), Date: now.Add(-2 * time.Hour)},
		{ID: "p4", RentalID: strPtr("gone"), Amount: dec(1), Date: now.Add(-3 * time.Hour)},
	}

	txs := domain.Transactions(payments, rentals, sales)
	require.Len(t, txs, 4)

	assert.Equal(t, "p2", txs[0].ID)
	assert.Equal(t, domain.SourceSale, txs[0].SourceType)
	assert.Equal(t, "#xyz987", txs[0].SourceRef)
	assert.Equal(t, "Walk-in", txs[0].CustomerName)

	assert.Equal(t, domain.SourceRental, txs[1].SourceType)
	assert.Equal(t, "#abcdef", txs[1].SourceRef)
	assert.Equal(t, "John Doe", txs[1].CustomerName)

	assert.Equal(t, domain.SourceOther, txs[2].SourceType)
	assert.Equal(t, "-", txs[2].SourceRef)

	assert.Equal(t, "Unknown", txs[3].SourceRef)
}

func TestDashboard(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	rentals := []domain.Rental{
		{ID: "r1", Status: domain.RentalStatusActive, ExpectedReturnDate: now.AddDate(0, 0, 2), Items: []domain.RentalItem{{ItemID: "a", Quantity: 2}}},
		{ID: "r2", Status: domain.RentalStatusActive, ExpectedReturnDate: now.AddDate(0, 0, -2), Items: []domain.RentalItem{{ItemID: "a", Quantity: 1}, {ItemID: "b", Quantity: 3, Returned: true}}},
		{ID: "r3", Status: domain.RentalStatusReturned, ExpectedReturnDate: now.AddDate(0, 0, -9), Items: []domain.RentalItem{{ItemID: "a", Quantity: 5, Returned: true}}},
	}
	payments := []domain.Payment{
		{Amount: dec(100), Date: now},
		{Amount: dec(50), Date: now.AddDate(0, 0, -1)},
	}

	stats := domain.Dashboard(now, 2, 3, rentals, payments)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 3, stats.ItemsRented)
	assert.Equal(t, 1, stats.OverdueCount)
	assertDec(t, 100, stats.TodaysIncome, "income")
}

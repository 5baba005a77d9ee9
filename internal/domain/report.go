package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

var Windows = []Window{WindowToday, WindowWeek, WindowMonth}

func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case WindowToday, WindowWeek, WindowMonth:
		return w, nil
	case "daily":
		return WindowToday, nil
	case "weekly":
		return WindowWeek, nil
	case "monthly":
		return WindowMonth, nil
	}
	return "", NewValidationError("window", "window must be one of today, week, month")
}

// Range returns the half-open interval [from, to) the window covers at now.
// Week is the last seven calendar days including today.
func (w Window) Range(now time.Time) (from, to time.Time) {
	today := StartOfDay(now)
	switch w {
	case WindowWeek:
		return today.AddDate(0, 0, -6), today.AddDate(0, 0, 1)
	case WindowMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first, first.AddDate(0, 1, 0)
	default:
		return today, today.AddDate(0, 0, 1)
	}
}

type Period struct {
	From time.Time
	To   time.Time
}

func (w Window) Period(now time.Time) Period {
	from, to := w.Range(now)
	return Period{From: from, To: to}
}

func (p Period) Contains(t time.Time) bool {
	t = t.In(p.From.Location())
	return !t.Before(p.From) && t.Before(p.To)
}

type ReportSummary struct {
	Window           Window          `json:"window"`
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	RentGenerated    decimal.Decimal `json:"rentGenerated"`
	SalesRevenue     decimal.Decimal `json:"salesRevenue"`
	PaymentsReceived decimal.Decimal `json:"paymentsReceived"`
	DueFromRent      decimal.Decimal `json:"dueFromRent"`
}

// Summarize aggregates the window's figures. Rentals are placed by rent date,
// sales and payments by their date. Due is only counted for in-window rentals
// but uses every payment made towards them.
func Summarize(w Window, now time.Time, rentals []Rental, sales []Sale, payments []Payment) ReportSummary {
	p := w.Period(now)
	sum := ReportSummary{
		Window:           w,
		From:             p.From,
		To:               p.To,
		RentGenerated:    decimal.Zero,
		SalesRevenue:     decimal.Zero,
		PaymentsReceived: decimal.Zero,
		DueFromRent:      decimal.Zero,
	}

	for _, r := range rentals {
		if !p.Contains(r.RentDate) {
			continue
		}
		sum.RentGenerated = sum.RentGenerated.Add(r.TotalAmount)
		sum.DueFromRent = sum.DueFromRent.Add(RentalDue(r, payments))
	}
	for _, s := range sales {
		if p.Contains(s.Date) {
			sum.SalesRevenue = sum.SalesRevenue.Add(s.TotalAmount)
		}
	}
	for _, pay := range payments {
		if p.Contains(pay.Date) {
			sum.PaymentsReceived = sum.PaymentsReceived.Add(pay.Amount)
		}
	}
	return sum
}

type TransactionSource string

const (
	SourceRental TransactionSource = "Rental"
	SourceSale   TransactionSource = "Sale"
	SourceOther  TransactionSource = "Other"
)

const unknownRef = "Unknown"

// Transaction is a payment with the record it settles resolved for display.
type Transaction struct {
	Payment
	SourceType   TransactionSource `json:"sourceType"`
	SourceRef    string            `json:"sourceRef"`
	CustomerName string            `json:"customerName"`
}

// Transactions enriches payments and orders them newest first.
func Transactions(payments []Payment, rentals []Rental, sales []Sale) []Transaction {
	rentalByID := make(map[string]Rental, len(rentals))
	for _, r := range rentals {
		rentalByID[r.ID] = r
	}
	saleByID := make(map[string]Sale, len(sales))
	for _, s := range sales {
		saleByID[s.ID] = s
	}

	out := make([]Transaction, 0, len(payments))
	for _, p := range payments {
		tx := Transaction{Payment: p, SourceType: SourceOther, SourceRef: "-", CustomerName: unknownRef}
		switch {
		case p.RentalID != nil:
			tx.SourceType = SourceRental
			tx.SourceRef = unknownRef
			if r, ok := rentalByID[*p.RentalID]; ok {
				tx.SourceRef = shortRef(r.ID)
				tx.CustomerName = r.CustomerName
			}
		case p.SaleID != nil:
			tx.SourceType = SourceSale
			tx.SourceRef = unknownRef
			if s, ok := saleByID[*p.SaleID]; ok {
				tx.SourceRef = shortRef(s.ID)
				tx.CustomerName = s.CustomerName
			}
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func shortRef(id string) string {
	if len(id) > 6 {
		id = id[:6]
	}
	return "#" + id
}

type DashboardStats struct {
	TotalCustomers int             `json:"totalCustomers"`
	TotalItems     int             `json:"totalItems"`
	ItemsRented    int             `json:"itemsRented"`
	OverdueCount   int             `json:"overdueCount"`
	TodaysIncome   decimal.Decimal `json:"todaysIncome"`
}

// Dashboard computes the front-page counters. Rental statuses are read as of now.
func Dashboard(now time.Time, customers int, items int, rentals []Rental, payments []Payment) DashboardStats {
	stats := DashboardStats{TotalCustomers: customers, TotalItems: items, TodaysIncome: decimal.Zero}
	for _, r := range rentals {
		status := r.StatusAt(now)
		if status == RentalStatusReturned {
			continue
		}
		if status == RentalStatusOverdue {
			stats.OverdueCount++
		}
		for _, line := range r.Items {
			if !line.Returned {
				stats.ItemsRented += line.Quantity
			}
		}
	}
	today := WindowToday.Period(now)
	for _, p := range payments {
		if today.Contains(p.Date) {
			stats.TodaysIncome = stats.TodaysIncome.Add(p.Amount)
		}
	}
	return stats
}

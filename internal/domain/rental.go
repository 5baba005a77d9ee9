package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "Active"
	RentalStatusPartial  RentalStatus = "Partial Return"
	RentalStatusOverdue  RentalStatus = "Overdue"
	RentalStatusReturned RentalStatus = "Returned"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusActive, RentalStatusPartial, RentalStatusOverdue, RentalStatusReturned:
		return true
	}
	return false
}

type Rental struct {
	ID                 string       `json:"id"`
	CustomerID         string       `json:"customerId"`
	CustomerName       string       `json:"customerName"`
	RentDate           time.Time    `json:"rentDate"`
	ExpectedReturnDate time.Time    `json:"expectedReturnDate"`
	Items              []RentalItem `json:"items"`
	// TotalAmount is fixed when the rental is created.
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      RentalStatus    `json:"status"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// RentalItem is one line of a rental. Name and rate are snapshots taken when the
// rental was created.
type RentalItem struct {
	ItemID         string          `json:"itemId"`
	ItemName       string          `json:"itemName"`
	Quantity       int             `json:"quantity"`
	DailyRentPrice decimal.Decimal `json:"dailyRentPrice"`
	Returned       bool            `json:"returned"`
	ReturnedDate   *time.Time      `json:"returnedDate,omitempty"`
}

type RentalFilter struct {
	Status     RentalStatus
	CustomerID string
}

// RentalDurationDays is the number of billable days, at least 1. Partial days
// round up.
func RentalDurationDays(rentDate, expectedReturnDate time.Time) int {
	diff := wallClock(expectedReturnDate).Sub(wallClock(rentDate))
	if diff <= 0 {
		return 1
	}
	days := int(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}

// RentalTotal prices each line at its snapshot rate for the given number of days.
func RentalTotal(lines []RentalItem, days int) decimal.Decimal {
	total := decimal.Zero
	d := decimal.NewFromInt(int64(days))
	for _, line := range lines {
		total = total.Add(line.DailyRentPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Mul(d))
	}
	return total
}

func (r *Rental) DurationDays() int {
	return RentalDurationDays(r.RentDate, r.ExpectedReturnDate)
}

// StatusAt is the status as of now: anything not Returned whose expected return
// day has passed is Overdue.
func (r *Rental) StatusAt(now time.Time) RentalStatus {
	if r.Status == RentalStatusReturned {
		return RentalStatusReturned
	}
	if IsPastDue(r.ExpectedReturnDate, now) {
		return RentalStatusOverdue
	}
	return r.Status
}

// SyncStatus applies StatusAt to the stored status and reports whether it changed.
func (r *Rental) SyncStatus(now time.Time) bool {
	next := r.StatusAt(now)
	if next == r.Status {
		return false
	}
	r.Status = next
	return true
}

// MarkReturned flags the lines for the given item ids and moves the status.
// Lines already returned keep their original date. An Overdue rental stays
// Overdue until every line is back. Returns the number of lines newly returned.
func (r *Rental) MarkReturned(itemIDs []string, at time.Time) int {
	want := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		want[id] = struct{}{}
	}

	justReturned := 0
	allReturned := true
	for i := range r.Items {
		line := &r.Items[i]
		if _, ok := want[line.ItemID]; ok && !line.Returned {
			ts := at
			line.Returned = true
			line.ReturnedDate = &ts
			justReturned++
		}
		if !line.Returned {
			allReturned = false
		}
	}

	switch {
	case allReturned:
		r.Status = RentalStatusReturned
	case r.Status == RentalStatusActive && justReturned > 0:
		r.Status = RentalStatusPartial
	}
	return justReturned
}

// Outstanding lists lines that are still out.
func (r *Rental) Outstanding() []RentalItem {
	var out []RentalItem
	for _, line := range r.Items {
		if !line.Returned {
			out = append(out, line)
		}
	}
	return out
}

func (r Rental) Clone() Rental {
	c := r
	c.Items = append([]RentalItem(nil), r.Items...)
	return c
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const SalePaymentNote = "Sale Payment"

// Payment is money received. At most one of RentalID and SaleID is set.
type Payment struct {
	ID        string          `json:"id"`
	RentalID  *string         `json:"rentalId,omitempty"`
	SaleID    *string         `json:"saleId,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PaymentFilter struct {
	RentalID string
	SaleID   string
}

func (f PaymentFilter) Matches(p Payment) bool {
	if f.RentalID != "" && (p.RentalID == nil || *p.RentalID != f.RentalID) {
		return false
	}
	if f.SaleID != "" && (p.SaleID == nil || *p.SaleID != f.SaleID) {
		return false
	}
	return true
}

// PaidTowardsRental sums the payments tagged to a rental.
func PaidTowardsRental(payments []Payment, rentalID string) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		if p.RentalID != nil && *p.RentalID == rentalID {
			paid = paid.Add(p.Amount)
		}
	}
	return paid
}

// RentalDue is what is still owed on a rental, never negative.
func RentalDue(r Rental, payments []Payment) decimal.Decimal {
	due := r.TotalAmount.Sub(PaidTowardsRental(payments, r.ID))
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

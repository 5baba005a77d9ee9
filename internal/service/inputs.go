package service

import (
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// CustomerInput carries customer fields. On update only non-nil fields change.
type CustomerInput struct {
	Name       *string
	Phone      *string
	Address    *string
	NationalID *string
	PhotoURL   *string
}

// ItemInput carries item fields. On update only non-nil fields change.
type ItemInput struct {
	Name           *string
	Category       *string
	Description    *string
	DailyRentPrice *decimal.Decimal
	SellingPrice   *decimal.Decimal
	TotalQuantity  *int
	PhotoURL       *string
}

type RentalLineInput struct {
	ItemID   string
	Quantity int
}

type CreateRentalInput struct {
	CustomerID string
	// RentDate defaults to the start of today.
	RentDate           time.Time
	ExpectedReturnDate time.Time
	Items              []RentalLineInput
	Notes              *string
}

type SaleLineInput struct {
	ItemID   string
	Quantity int
	// UnitPrice defaults to the item's selling price.
	UnitPrice *decimal.Decimal
}

type CreateSaleInput struct {
	CustomerID *string
	// CustomerName defaults to the customer's name when CustomerID is set.
	CustomerName string
	// Date defaults to now.
	Date  time.Time
	Items []SaleLineInput
}

type PaymentInput struct {
	RentalID *string
	SaleID   *string
	Amount   decimal.Decimal
	// Date defaults to now.
	Date time.Time
	Note *string
}

// RentalDetail is a rental with the money taken against it.
type RentalDetail struct {
	domain.Rental
	Payments []domain.Payment `json:"payments"`
	Paid     decimal.Decimal  `json:"paid"`
	Due      decimal.Decimal  `json:"due"`
}

func nonEmpty(p *string) bool {
	return p != nil && *p != ""
}

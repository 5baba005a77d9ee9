package http

import (
	"github.com/shopspring/decimal"

	"rentdesk-backend/internal/service"
)

type customerRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=200"`
	Phone      *string `json:"phone" validate:"omitempty,max=40"`
	Address    *string `json:"address" validate:"omitempty,max=500"`
	NationalID *string `json:"nid" validate:"omitempty,max=40"`
	PhotoURL   *string `json:"photoUrl" validate:"omitempty,max=2048"`
}

func (r customerRequest) input() service.CustomerInput {
	return service.CustomerInput{
		Name:       r.Name,
		Phone:      r.Phone,
		Address:    r.Address,
		NationalID: r.NationalID,
		PhotoURL:   r.PhotoURL,
	}
}

type itemRequest struct {
	Name           *string          `json:"name" validate:"omitempty,max=200"`
	Category       *string          `json:"category" validate:"omitempty,max=100"`
	Description    *string          `json:"description" validate:"omitempty,max=2000"`
	DailyRentPrice *decimal.Decimal `json:"dailyRentPrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	TotalQuantity  *int             `json:"totalQuantity" validate:"omitempty,min=0"`
	PhotoURL       *string          `json:"photoUrl" validate:"omitempty,max=2048"`
}

func (r itemRequest) input() service.ItemInput {
	return service.ItemInput{
		Name:           r.Name,
		Category:       r.Category,
		Description:    r.Description,
		DailyRentPrice: r.DailyRentPrice,
		SellingPrice:   r.SellingPrice,
		TotalQuantity:  r.TotalQuantity,
		PhotoURL:       r.PhotoURL,
	}
}

type rentalLineRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity"`
}

// Item lists are not checked for length here; an empty list is reported as an
// empty operation by the service.
type createRentalRequest struct {
	CustomerID         string              `json:"customerId" validate:"required"`
	RentDate           string              `json:"rentDate" validate:"date"`
	ExpectedReturnDate string              `json:"expectedReturnDate" validate:"required,date"`
	Items              []rentalLineRequest `json:"items" validate:"dive"`
	Notes              *string             `json:"notes" validate:"omitempty,max=2000"`
}

type returnRequest struct {
	ItemIDs []string `json:"itemIds" validate:"dive,required"`
}

type saleLineRequest struct {
	ItemID   string           `json:"itemId" validate:"required"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

type createSaleRequest struct {
	CustomerID   *string           `json:"customerId"`
	CustomerName string            `json:"customerName" validate:"max=200"`
	Date         string            `json:"date" validate:"date"`
	Items        []saleLineRequest `json:"items" validate:"dive"`
}

type paymentRequest struct {
	RentalID *string          `json:"rentalId"`
	SaleID   *string          `json:"saleId"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Date     string           `json:"date" validate:"date"`
	Note     *string          `json:"note" validate:"omitempty,max=500"`
}

type noteRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

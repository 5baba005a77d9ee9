package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is physical stock owned by the shop. TotalQuantity only drops
// through sales; rentals are accounted for by AvailableQuantity.
type InventoryItem struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       *string          `json:"category,omitempty"`
	Description    *string          `json:"description,omitempty"`
	DailyRentPrice decimal.Decimal  `json:"dailyRentPrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice,omitempty"`
	TotalQuantity  int              `json:"totalQuantity"`
	PhotoURL       *string          `json:"photoUrl,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// StockedItem is an item annotated with its computed available quantity.
type StockedItem struct {
	InventoryItem
	Available int `json:"available"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID           string          `json:"id"`
	CustomerID   *string         `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName"`
	Items        []SaleItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type SaleItem struct {
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// NewSaleItem fixes the line total from the unit price.
func NewSaleItem(itemID, itemName string, quantity int, unitPrice decimal.Decimal) SaleItem {
	return SaleItem{
		ItemID:    itemID,
		ItemName:  itemName,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func SaleTotal(lines []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return total
}

func (s Sale) Clone() Sale {
	c := s
	c.Items = append([]SaleItem(nil), s.Items...)
	return c
}

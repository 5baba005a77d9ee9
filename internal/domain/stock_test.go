package domain_test

import (
	"testing"

	"rentdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAvailableQuantity(t *testing.T) {
	item := domain.InventoryItem{ID: "mic", Name: "Wireless Mic", TotalQuantity: 5}

	rentals := []domain.Rental{
		{ID: "r1", Status: domain.RentalStatusActive, Items: []domain.RentalItem{
			{ItemID: "mic", Quantity: 2},
			{ItemID: "light", Quantity: 4},
		}},
		{ID: "r2", Status: domain.RentalStatusPartial, Items: []domain.RentalItem{
			{ItemID: "mic", Quantity: 1, Returned: true},
			{ItemID: "mic", Quantity: 1},
		}},
		{ID: "r3", Status: domain.RentalStatusReturned, Items: []domain.RentalItem{
			{ItemID: "mic", Quantity: 3},
		}},
		{ID: "r4", Status: domain.RentalStatusOverdue, Items: []domain.RentalItem{
			{ItemID: "mic", Quantity: 1},
		}},
	}

	t.Run("Subtracts unreturned lines of open rentals", func(t *testing.T) {
		assert.Equal(t, 4, domain.OutstandingQuantity(rentals, "mic"))
		assert.Equal(t, 1, domain.AvailableQuantity(item, rentals))
	})

	t.Run("Clamp", func(t *testing.T) {
		assert.Equal(t, 3, domain.ClampAvailable(5, 2))
		assert.Equal(t, 0, domain.ClampAvailable(2, 2))
		assert.Equal(t, 0, domain.ClampAvailable(2, 5))
	})

	t.Run("Never negative", func(t *testing.T) {
		small := item
		small.TotalQuantity = 2
		assert.Equal(t, 0, domain.AvailableQuantity(small, rentals))
	})

	t.Run("No rentals means full stock", func(t *testing.T) {
		assert.Equal(t, 5, domain.AvailableQuantity(item, nil))
	})

	t.Run("WithAvailability matches per item calculation", func(t *testing.T) {
		items := []domain.InventoryItem{item, {ID: "light", TotalQuantity: 20}, {ID: "projector", TotalQuantity: 2}}
		stocked := domain.WithAvailability(items, rentals)
		assert.Len(t, stocked, 3)
		for _, s := range stocked {
			assert.Equal(t, domain.AvailableQuantity(s.InventoryItem, rentals), s.Available, s.ID)
		}
		assert.Equal(t, 16, stocked[1].Available)
	})
}

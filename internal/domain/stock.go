package domain

// OutstandingByItem sums the unreturned line quantities of every rental that is
// not Returned, keyed by item id.
func OutstandingByItem(rentals []Rental) map[string]int {
	out := make(map[string]int)
	for _, r := range rentals {
		if r.Status == RentalStatusReturned {
			continue
		}
		for _, line := range r.Items {
			if !line.Returned {
				out[line.ItemID] += line.Quantity
			}
		}
	}
	return out
}

// OutstandingQuantity is OutstandingByItem for a single item.
func OutstandingQuantity(rentals []Rental, itemID string) int {
	total := 0
	for _, r := range rentals {
		if r.Status == RentalStatusReturned {
			continue
		}
		for _, line := range r.Items {
			if line.ItemID == itemID && !line.Returned {
				total += line.Quantity
			}
		}
	}
	return total
}

// AvailableQuantity is total stock minus what is out on rental, floored at 0.
func AvailableQuantity(item InventoryItem, rentals []Rental) int {
	return ClampAvailable(item.TotalQuantity, OutstandingQuantity(rentals, item.ID))
}

// WithAvailability annotates items using one pass over the rentals.
func WithAvailability(items []InventoryItem, rentals []Rental) []StockedItem {
	outstanding := OutstandingByItem(rentals)
	res := make([]StockedItem, 0, len(items))
	for _, it := range items {
		res = append(res, StockedItem{
			InventoryItem: it,
			Available:     ClampAvailable(it.TotalQuantity, outstanding[it.ID]),
		})
	}
	return res
}

// ClampAvailable is total less outstanding, never below 0.
func ClampAvailable(total, outstanding int) int {
	if avail := total - outstanding; avail > 0 {
		return avail
	}
	return 0
}

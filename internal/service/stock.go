package service

import (
	"context"
	"fmt"
	"sort"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

// stockRequest is the combined quantity asked for per item across all lines.
type stockRequest struct {
	quantities map[string]int
	order      []string
}

func newStockRequest() *stockRequest {
	return &stockRequest{quantities: make(map[string]int)}
}

func (r *stockRequest) add(itemID string, quantity int) {
	if _, seen := r.quantities[itemID]; !seen {
		r.order = append(r.order, itemID)
	}
	r.quantities[itemID] += quantity
}

// reserve locks every requested item in id order and checks it against current
// availability. It returns the locked items keyed by id.
func (r *stockRequest) reserve(ctx context.Context, repos repository.Repositories) (map[string]*domain.InventoryItem, error) {
	ids := append([]string(nil), r.order...)
	sort.Strings(ids)

	items := make(map[string]*domain.InventoryItem, len(ids))
	for _, id := range ids {
		it, err := repos.Items.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		items[id] = it
	}

	open, err := repos.Rentals.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open rentals: %w", err)
	}
	outstanding := domain.OutstandingByItem(open)

	// Report in the order the lines were given.
	for _, id := range r.order {
		it := items[id]
		available := domain.ClampAvailable(it.TotalQuantity, outstanding[id])
		if r.quantities[id] > available {
			return nil, domain.NewInsufficientStockError(it.Name, available)
		}
	}
	return items, nil
}

func validateQuantity(index, quantity int) error {
	if quantity < 1 {
		return domain.NewValidationError(fmt.Sprintf("items[%d].quantity", index), "quantity must be at least 1")
	}
	return nil
}

func validateItemID(index int, itemID string) error {
	if itemID == "" {
		return domain.NewValidationError(fmt.Sprintf("items[%d].itemId", index), "item id is required")
	}
	return nil
}

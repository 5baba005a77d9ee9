package memory

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/google/uuid"
)

type itemRepository struct {
	h *handle
}

func findItem(st *state, id string) int {
	for i := range st.Items {
		if st.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *itemRepository) Create(ctx context.Context, it *domain.InventoryItem) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	return r.h.write(func(st *state) error {
		st.Items = append(st.Items, *it)
		return nil
	})
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	var out *domain.InventoryItem
	err := r.h.read(func(st *state) error {
		i := findItem(st, id)
		if i < 0 {
			return domain.NewNotFoundError("item", id)
		}
		it := st.Items[i]
		out = &it
		return nil
	})
	return out, err
}

// GetForUpdate is GetByID here: inside RunInTx the whole store is already locked.
func (r *itemRepository) GetForUpdate(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *itemRepository) Update(ctx context.Context, it *domain.InventoryItem) error {
	return r.h.write(func(st *state) error {
		i := findItem(st, it.ID)
		if i < 0 {
			return domain.NewNotFoundError("item", it.ID)
		}
		st.Items[i] = *it
		return nil
	})
}

func (r *itemRepository) AdjustQuantity(ctx context.Context, id string, delta int) error {
	return r.h.write(func(st *state) error {
		i := findItem(st, id)
		if i < 0 {
			return domain.NewNotFoundError("item", id)
		}
		if st.Items[i].TotalQuantity+delta < 0 {
			return domain.NewValidationError("totalQuantity", "quantity can not go below zero")
		}
		st.Items[i].TotalQuantity += delta
		return nil
	})
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	return r.h.write(func(st *state) error {
		i := findItem(st, id)
		if i < 0 {
			return domain.NewNotFoundError("item", id)
		}
		st.Items = append(st.Items[:i], st.Items[i+1:]...)
		return nil
	})
}

func (r *itemRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.h.read(func(st *state) error {
		out = append([]domain.InventoryItem(nil), st.Items...)
		return nil
	})
	return out, err
}

func (r *itemRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.h.read(func(st *state) error {
		n = len(st.Items)
		return nil
	})
	return n, err
}

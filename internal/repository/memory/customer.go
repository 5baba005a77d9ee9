package memory

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/google/uuid"
)

type customerRepository struct {
	h *handle
}

func findCustomer(st *state, id string) int {
	for i := range st.Customers {
		if st.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return r.h.write(func(st *state) error {
		st.Customers = append(st.Customers, *c)
		return nil
	})
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var out *domain.Customer
	err := r.h.read(func(st *state) error {
		i := findCustomer(st, id)
		if i < 0 {
			return domain.NewNotFoundError("customer", id)
		}
		c := st.Customers[i]
		out = &c
		return nil
	})
	return out, err
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	return r.h.write(func(st *state) error {
		i := findCustomer(st, c.ID)
		if i < 0 {
			return domain.NewNotFoundError("customer", c.ID)
		}
		st.Customers[i] = *c
		return nil
	})
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return r.h.write(func(st *state) error {
		i := findCustomer(st, id)
		if i < 0 {
			return domain.NewNotFoundError("customer", id)
		}
		st.Customers = append(st.Customers[:i], st.Customers[i+1:]...)
		return nil
	})
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.h.read(func(st *state) error {
		out = append([]domain.Customer(nil), st.Customers...)
		return nil
	})
	return out, err
}

func (r *customerRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.h.read(func(st *state) error {
		n = len(st.Customers)
		return nil
	})
	return n, err
}

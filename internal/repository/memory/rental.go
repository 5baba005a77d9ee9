package memory

import (
	"context"
	"slices"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/google/uuid"
)

type rentalRepository struct {
	h *handle
}

func findRental(st *state, id string) int {
	for i := range st.Rentals {
		if st.Rentals[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now().UTC()
	}
	return r.h.write(func(st *state) error {
		st.Rentals = append(st.Rentals, rt.Clone())
		return nil
	})
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	var out *domain.Rental
	err := r.h.read(func(st *state) error {
		i := findRental(st, id)
		if i < 0 {
			return domain.NewNotFoundError("rental", id)
		}
		rt := st.Rentals[i].Clone()
		out = &rt
		return nil
	})
	return out, err
}

// List returns matching rentals newest first.
func (r *rentalRepository) List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	out, err := r.collect(func(rt *domain.Rental) bool {
		if filter.Status != "" && rt.Status != filter.Status {
			return false
		}
		return filter.CustomerID == "" || rt.CustomerID == filter.CustomerID
	})
	slices.Reverse(out)
	return out, err
}

func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.Rental, error) {
	return r.collect(func(rt *domain.Rental) bool {
		return rt.Status != domain.RentalStatusReturned
	})
}

func (r *rentalRepository) collect(keep func(rt *domain.Rental) bool) ([]domain.Rental, error) {
	var out []domain.Rental
	err := r.h.read(func(st *state) error {
		for i := range st.Rentals {
			if keep(&st.Rentals[i]) {
				out = append(out, st.Rentals[i].Clone())
			}
		}
		return nil
	})
	return out, err
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	return r.h.write(func(st *state) error {
		i := findRental(st, id)
		if i < 0 {
			return domain.NewNotFoundError("rental", id)
		}
		st.Rentals[i].Status = status
		return nil
	})
}

func (r *rentalRepository) UpdateReturns(ctx context.Context, rt *domain.Rental) error {
	return r.h.write(func(st *state) error {
		i := findRental(st, rt.ID)
		if i < 0 {
			return domain.NewNotFoundError("rental", rt.ID)
		}
		updated := st.Rentals[i]
		updated.Items = append([]domain.RentalItem(nil), rt.Items...)
		updated.Status = rt.Status
		st.Rentals[i] = updated
		return nil
	})
}

func (r *rentalRepository) MarkOverdue(ctx context.Context, cutoff time.Time) ([]string, error) {
	var ids []string
	err := r.h.write(func(st *state) error {
		for i := range st.Rentals {
			rt := &st.Rentals[i]
			if rt.Status != domain.RentalStatusActive && rt.Status != domain.RentalStatusPartial {
				continue
			}
			if rt.ExpectedReturnDate.Before(cutoff) {
				rt.Status = domain.RentalStatusOverdue
				ids = append(ids, rt.ID)
			}
		}
		return nil
	})
	return ids, err
}

func (r *rentalRepository) CountOpenByCustomer(ctx context.Context, customerID string) (int, error) {
	var n int
	err := r.h.read(func(st *state) error {
		for _, rt := range st.Rentals {
			if rt.CustomerID == customerID && rt.Status != domain.RentalStatusReturned {
				n++
			}
		}
		return nil
	})
	return n, err
}

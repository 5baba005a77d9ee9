package memory

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/google/uuid"
)

type paymentRepository struct {
	h *handle
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.h.write(func(st *state) error {
		st.Payments = append(st.Payments, *p)
		return nil
	})
}

func (r *paymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.h.read(func(st *state) error {
		for _, p := range st.Payments {
			if filter.Matches(p) {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

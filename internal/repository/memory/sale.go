package memory

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/google/uuid"
)

type saleRepository struct {
	h *handle
}

func (r *saleRepository) Create(ctx context.Context, s *domain.Sale) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return r.h.write(func(st *state) error {
		st.Sales = append(st.Sales, s.Clone())
		return nil
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	var out *domain.Sale
	err := r.h.read(func(st *state) error {
		for i := range st.Sales {
			if st.Sales[i].ID == id {
				s := st.Sales[i].Clone()
				out = &s
				return nil
			}
		}
		return domain.NewNotFoundError("sale", id)
	})
	return out, err
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	var out []domain.Sale
	err := r.h.read(func(st *state) error {
		for _, s := range st.Sales {
			out = append(out, s.Clone())
		}
		return nil
	})
	return out, err
}

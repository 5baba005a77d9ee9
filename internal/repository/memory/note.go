package memory

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/google/uuid"
)

type noteRepository struct {
	h *handle
}

func (r *noteRepository) Create(ctx context.Context, n *domain.Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return r.h.write(func(st *state) error {
		st.Notes = append(st.Notes, *n)
		return nil
	})
}

func (r *noteRepository) List(ctx context.Context) ([]domain.Note, error) {
	var out []domain.Note
	err := r.h.read(func(st *state) error {
		out = make([]domain.Note, 0, len(st.Notes))
		for i := len(st.Notes) - 1; i >= 0; i-- {
			out = append(out, st.Notes[i])
		}
		return nil
	})
	return out, err
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return r.h.write(func(st *state) error {
		for i := range st.Notes {
			if st.Notes[i].ID == id {
				st.Notes = append(st.Notes[:i], st.Notes[i+1:]...)
				return nil
			}
		}
		return domain.NewNotFoundError("note", id)
	})
}

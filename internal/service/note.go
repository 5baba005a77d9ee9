package service

import (
	"context"
	"strings"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type noteService struct {
	store repository.Store
}

func NewNoteService(store repository.Store) NoteService {
	return &noteService{store: store}
}

func (s *noteService) AddNote(ctx context.Context, content string) (*domain.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "note content is required")
	}
	n := &domain.Note{Content: content}
	if err := s.store.Repositories().Notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	return s.store.Repositories().Notes.List(ctx)
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	return s.store.Repositories().Notes.Delete(ctx, id)
}

// Package memory keeps the shop in process memory, optionally mirrored to a
// JSON snapshot file so data survives restarts.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type state struct {
	Customers []domain.Customer      `json:"customers"`
	Items     []domain.InventoryItem `json:"items"`
	Rentals   []domain.Rental        `json:"rentals"`
	Sales     []domain.Sale          `json:"sales"`
	Payments  []domain.Payment       `json:"payments"`
	// Notes are kept in insertion order.
	Notes []domain.Note `json:"notes"`
}

// clone copies the collections. Stored records are replaced, never mutated, so
// element copies are enough.
func (s *state) clone() *state {
	return &state{
		Customers: append([]domain.Customer(nil), s.Customers...),
		Items:     append([]domain.InventoryItem(nil), s.Items...),
		Rentals:   append([]domain.Rental(nil), s.Rentals...),
		Sales:     append([]domain.Sale(nil), s.Sales...),
		Payments:  append([]domain.Payment(nil), s.Payments...),
		Notes:     append([]domain.Note(nil), s.Notes...),
	}
}

// Store is a copy-on-write store. Every write works on a copy of the state that
// replaces the current one only after it succeeds and has been persisted.
type Store struct {
	mu    sync.RWMutex
	st    *state
	path  string
	repos repository.Repositories
}

// NewStore returns an empty store that is never persisted.
func NewStore() *Store {
	s := &Store{st: &state{}}
	s.repos = s.bind(nil)
	return s
}

// Open loads the snapshot at path, or starts empty when the file does not
// exist yet. Every committed write rewrites the file.
func Open(path string) (*Store, error) {
	s := NewStore()
	s.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("No snapshot found, starting with an empty store", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	st := &state{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	s.st = st
	logger.Info("Loaded snapshot", "path", path, "customers", len(st.Customers), "items", len(st.Items), "rentals", len(st.Rentals))
	return s, nil
}

func (s *Store) Repositories() repository.Repositories { return s.repos }

// RunInTx holds the write lock for the whole of fn so that checks and writes
// inside it see no interleaved changes.
func (s *Store) RunInTx(ctx context.Context, fn repository.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.clone()
	if err := fn(ctx, s.bind(next)); err != nil {
		return err
	}
	return s.commit(next)
}

func (s *Store) Close() error { return nil }

func (s *Store) bind(tx *state) repository.Repositories {
	h := &handle{store: s, tx: tx}
	return repository.Repositories{
		Customers: &customerRepository{h},
		Items:     &itemRepository{h},
		Rentals:   &rentalRepository{h},
		Sales:     &saleRepository{h},
		Payments:  &paymentRepository{h},
		Notes:     &noteRepository{h},
	}
}

// commit persists next and makes it current. Callers hold the write lock.
func (s *Store) commit(next *state) error {
	if s.path != "" {
		if err := writeSnapshot(s.path, next); err != nil {
			return err
		}
	}
	s.st = next
	return nil
}

func writeSnapshot(path string, st *state) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// handle routes repository calls either to a running transaction or to the
// store under its own lock.
type handle struct {
	store *Store
	tx    *state
}

func (h *handle) read(fn func(st *state) error) error {
	if h.tx != nil {
		return fn(h.tx)
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return fn(h.store.st)
}

func (h *handle) write(fn func(st *state) error) error {
	if h.tx != nil {
		return fn(h.tx)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	next := h.store.st.clone()
	if err := fn(next); err != nil {
		return err
	}
	return h.store.commit(next)
}

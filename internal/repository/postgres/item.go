package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"

	"github.com/google/uuid"
)

type itemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, category, description, daily_rent_price, selling_price, total_quantity, photo_url, created_at`

func (r *itemRepository) Create(ctx context.Context, it *domain.InventoryItem) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO items (` + itemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, it.ID, it.Name, it.Category, it.Description, it.DailyRentPrice, it.SellingPrice, it.TotalQuantity, it.PhotoURL, it.CreatedAt)
	return err
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

func (r *itemRepository) GetForUpdate(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

func (r *itemRepository) get(ctx context.Context, query, id string) (*domain.InventoryItem, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("item", id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.InventoryItem) error {
	query := `UPDATE items SET name=$1, category=$2, description=$3, daily_rent_price=$4, selling_price=$5, total_quantity=$6, photo_url=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, it.Name, it.Category, it.Description, it.DailyRentPrice, it.SellingPrice, it.TotalQuantity, it.PhotoURL, it.ID)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return domain.NewNotFoundError("item", it.ID)
	}
	return nil
}

func (r *itemRepository) AdjustQuantity(ctx context.Context, id string, delta int) error {
	query := `UPDATE items SET total_quantity = total_quantity + $1 WHERE id = $2 AND total_quantity + $1 >= 0`
	res, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("item", id)
		}
		return domain.NewValidationError("totalQuantity", "quantity can not go below zero")
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return domain.NewNotFoundError("item", id)
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *itemRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}

func scanItem(s scanner) (*domain.InventoryItem, error) {
	it := &domain.InventoryItem{}
	err := s.Scan(&it.ID, &it.Name, &it.Category, &it.Description, &it.DailyRentPrice, &it.SellingPrice, &it.TotalQuantity, &it.PhotoURL, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return it, nil
}

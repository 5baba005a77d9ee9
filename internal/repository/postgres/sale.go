package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type saleRepository struct {
	db DBTX
}

func NewSaleRepository(db DBTX) repository.SaleRepository {
	return &saleRepository{db: db}
}

const saleColumns = `id, customer_id, customer_name, total_amount, date, created_at`

func (r *saleRepository) Create(ctx context.Context, s *domain.Sale) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO sales (` + saleColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.CustomerID, s.CustomerName, s.TotalAmount, s.Date, s.CreatedAt); err != nil {
		return err
	}

	lineQuery := `INSERT INTO sale_items (sale_id, line_no, item_id, item_name, quantity, unit_price, total)
	              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, line := range s.Items {
		_, err := r.db.ExecContext(ctx, lineQuery, s.ID, i, line.ItemID, line.ItemName, line.Quantity, line.UnitPrice, line.Total)
		if err != nil {
			return fmt.Errorf("failed to insert sale line %d: %w", i, err)
		}
	}
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	s, err := scanSale(r.db.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("sale", id)
	}
	if err != nil {
		return nil, err
	}
	sales := []domain.Sale{*s}
	if err := r.loadLines(ctx, sales); err != nil {
		return nil, err
	}
	return &sales[0], nil
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) loadLines(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]string, len(sales))
	index := make(map[string]int, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
		index[s.ID] = i
	}

	query := `SELECT sale_id, item_id, item_name, quantity, unit_price, total
	          FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, line_no`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var saleID string
		var line domain.SaleItem
		if err := rows.Scan(&saleID, &line.ItemID, &line.ItemName, &line.Quantity, &line.UnitPrice, &line.Total); err != nil {
			return err
		}
		if i, ok := index[saleID]; ok {
			sales[i].Items = append(sales[i].Items, line)
		}
	}
	return rows.Err()
}

func scanSale(s scanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	if err := s.Scan(&sale.ID, &sale.CustomerID, &sale.CustomerName, &sale.TotalAmount, &sale.Date, &sale.CreatedAt); err != nil {
		return nil, err
	}
	return sale, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, customer_name, rent_date, expected_return_date, total_amount, status, notes, created_at`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO rentals (` + rentalColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.CustomerID, rt.CustomerName, rt.RentDate, rt.ExpectedReturnDate, rt.TotalAmount, rt.Status, rt.Notes, rt.CreatedAt)
	if err != nil {
		return err
	}

	lineQuery := `INSERT INTO rental_items (rental_id, line_no, item_id, item_name, quantity, daily_rent_price, returned, returned_date)
	              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, line := range rt.Items {
		_, err := r.db.ExecContext(ctx, lineQuery, rt.ID, i, line.ItemID, line.ItemName, line.Quantity, line.DailyRentPrice, line.Returned, line.ReturnedDate)
		if err != nil {
			return fmt.Errorf("failed to insert rental line %d: %w", i, err)
		}
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("rental", id)
	}
	if err != nil {
		return nil, err
	}

	rentals := []domain.Rental{*rt}
	if err := r.loadLines(ctx, rentals); err != nil {
		return nil, err
	}
	return &rentals[0], nil
}

func (r *rentalRepository) List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE 1=1`
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC, id DESC"
	return r.list(ctx, query, args...)
}

func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status <> $1 ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, domain.RentalStatusReturned)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// loadLines fills Items for every rental with a single query.
func (r *rentalRepository) loadLines(ctx context.Context, rentals []domain.Rental) error {
	if len(rentals) == 0 {
		return nil
	}
	ids := make([]string, len(rentals))
	index := make(map[string]int, len(rentals))
	for i, rt := range rentals {
		ids[i] = rt.ID
		index[rt.ID] = i
	}

	query := `SELECT rental_id, item_id, item_name, quantity, daily_rent_price, returned, returned_date
	          FROM rental_items WHERE rental_id = ANY($1) ORDER BY rental_id, line_no`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rentalID string
		var line domain.RentalItem
		if err := rows.Scan(&rentalID, &line.ItemID, &line.ItemName, &line.Quantity, &line.DailyRentPrice, &line.Returned, &line.ReturnedDate); err != nil {
			return err
		}
		if i, ok := index[rentalID]; ok {
			rentals[i].Items = append(rentals[i].Items, line)
		}
	}
	return rows.Err()
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return domain.NewNotFoundError("rental", id)
	}
	return nil
}

func (r *rentalRepository) UpdateReturns(ctx context.Context, rt *domain.Rental) error {
	lineQuery := `UPDATE rental_items SET returned = $1, returned_date = $2 WHERE rental_id = $3 AND line_no = $4`
	for i, line := range rt.Items {
		if _, err := r.db.ExecContext(ctx, lineQuery, line.Returned, line.ReturnedDate, rt.ID, i); err != nil {
			return fmt.Errorf("failed to update rental line %d: %w", i, err)
		}
	}
	return r.UpdateStatus(ctx, rt.ID, rt.Status)
}

func (r *rentalRepository) MarkOverdue(ctx context.Context, cutoff time.Time) ([]string, error) {
	logger.DatabaseCall("UPDATE", "rentals", "cutoff", cutoff)
	query := `UPDATE rentals SET status = $1
	          WHERE status IN ($2, $3) AND expected_return_date < $4
	          RETURNING id`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusOverdue, domain.RentalStatusActive, domain.RentalStatusPartial, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	logger.DatabaseResult("UPDATE", int64(len(ids)), rows.Err())
	return ids, rows.Err()
}

func (r *rentalRepository) CountOpenByCustomer(ctx context.Context, customerID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM rentals WHERE customer_id = $1 AND status <> $2`
	err := r.db.QueryRowContext(ctx, query, customerID, domain.RentalStatusReturned).Scan(&n)
	return n, err
}

func scanRental(s scanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := s.Scan(&rt.ID, &rt.CustomerID, &rt.CustomerName, &rt.RentDate, &rt.ExpectedReturnDate, &rt.TotalAmount, &rt.Status, &rt.Notes, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

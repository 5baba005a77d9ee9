package service

import (
	"context"
	"errors"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type rentalService struct {
	store repository.Store
	clock Clock
}

func NewRentalService(store repository.Store, clock Clock) RentalService {
	return &rentalService{store: store, clock: clock}
}

func (s *rentalService) CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.CreateRental", "customerID", in.CustomerID, "lines", len(in.Items))

	now := s.clock.Now()
	rentDate := in.RentDate
	if rentDate.IsZero() {
		rentDate = domain.StartOfDay(now)
	}

	var created *domain.Rental
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		customer, err := repos.Customers.GetByID(ctx, in.CustomerID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewInvalidCustomerError(in.CustomerID)
		}
		if err != nil {
			return err
		}

		if len(in.Items) == 0 {
			return domain.NewEmptyOperationError("rental has no items")
		}
		req := newStockRequest()
		for i, line := range in.Items {
			if err := validateItemID(i, line.ItemID); err != nil {
				return err
			}
			if err := validateQuantity(i, line.Quantity); err != nil {
				return err
			}
			req.add(line.ItemID, line.Quantity)
		}
		if in.ExpectedReturnDate.IsZero() {
			return domain.NewValidationError("expectedReturnDate", "expected return date is required")
		}
		if in.ExpectedReturnDate.Before(rentDate) {
			return domain.NewValidationError("expectedReturnDate", "expected return date is before rent date")
		}

		items, err := req.reserve(ctx, repos)
		if err != nil {
			return err
		}

		lines := make([]domain.RentalItem, 0, len(in.Items))
		for _, line := range in.Items {
			it := items[line.ItemID]
			lines = append(lines, domain.RentalItem{
				ItemID:         it.ID,
				ItemName:       it.Name,
				Quantity:       line.Quantity,
				DailyRentPrice: it.DailyRentPrice,
			})
		}

		rental := &domain.Rental{
			CustomerID:         customer.ID,
			CustomerName:       customer.Name,
			RentDate:           rentDate,
			ExpectedReturnDate: in.ExpectedReturnDate,
			Items:              lines,
			Status:             domain.RentalStatusActive,
			Notes:              in.Notes,
		}
		rental.TotalAmount = domain.RentalTotal(lines, rental.DurationDays())

		if err := repos.Rentals.Create(ctx, rental); err != nil {
			return err
		}
		created = rental
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err)
		return nil, err
	}

	logger.ExitMethod("rentalService.CreateRental", "rentalID", created.ID, "total", created.TotalAmount.StringFixed(2))
	return created, nil
}

// ReturnRentalItems marks the lines for itemIDs returned now. Ids that match no
// outstanding line are ignored.
func (s *rentalService) ReturnRentalItems(ctx context.Context, rentalID string, itemIDs []string) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.ReturnRentalItems", "rentalID", rentalID, "itemIDs", itemIDs)

	now := s.clock.Now()
	var updated *domain.Rental
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		rt, err := repos.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		rt.SyncStatus(now)
		rt.MarkReturned(itemIDs, now)
		if err := repos.Rentals.UpdateReturns(ctx, rt); err != nil {
			return err
		}
		updated = rt
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.ReturnRentalItems", err)
		return nil, err
	}

	logger.ExitMethod("rentalService.ReturnRentalItems", "rentalID", rentalID, "status", updated.Status)
	return updated, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*RentalDetail, error) {
	repos := s.store.Repositories()
	rt, err := repos.Rentals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.SyncStatus(s.clock.Now()) {
		if err := repos.Rentals.UpdateStatus(ctx, rt.ID, rt.Status); err != nil {
			return nil, err
		}
	}

	payments, err := repos.Payments.List(ctx, domain.PaymentFilter{RentalID: rt.ID})
	if err != nil {
		return nil, err
	}
	return &RentalDetail{
		Rental:   *rt,
		Payments: payments,
		Paid:     domain.PaidTowardsRental(payments, rt.ID),
		Due:      domain.RentalDue(*rt, payments),
	}, nil
}

// ListRentals brings overdue statuses up to date first so a status filter sees
// them.
func (s *rentalService) ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.NewValidationError("status", "unknown rental status")
	}
	if _, err := s.MarkOverdueRentals(ctx); err != nil {
		return nil, err
	}
	return s.store.Repositories().Rentals.List(ctx, filter)
}

// MarkOverdueRentals persists Overdue for every open rental whose expected
// return day has passed and returns their ids.
func (s *rentalService) MarkOverdueRentals(ctx context.Context) ([]string, error) {
	cutoff := domain.StartOfDay(s.clock.Now())
	ids, err := s.store.Repositories().Rentals.MarkOverdue(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to mark overdue rentals", "cutoff", cutoff, "error", err)
		return nil, err
	}
	if len(ids) > 0 {
		logger.Info("Marked rentals overdue", "count", len(ids))
	}
	return ids, nil
}

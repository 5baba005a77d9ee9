package service

import (
	"context"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type paymentService struct {
	store repository.Store
	clock Clock
}

func NewPaymentService(store repository.Store, clock Clock) PaymentService {
	return &paymentService{store: store, clock: clock}
}

// RecordPayment stores money received against a rental, a sale, or neither.
func (s *paymentService) RecordPayment(ctx context.Context, in PaymentInput) (*domain.Payment, error) {
	logger.EnterMethod("paymentService.RecordPayment", "amount", in.Amount.String())

	var created *domain.Payment
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		rentalSet, saleSet := nonEmpty(in.RentalID), nonEmpty(in.SaleID)
		if rentalSet && saleSet {
			return domain.NewValidationError("saleId", "a payment can reference a rental or a sale, not both")
		}
		if in.Amount.IsNegative() {
			return domain.NewValidationError("amount", "amount can not be negative")
		}

		p := &domain.Payment{Amount: in.Amount, Date: in.Date, Note: in.Note}
		if p.Date.IsZero() {
			p.Date = s.clock.Now()
		}
		if rentalSet {
			if _, err := repos.Rentals.GetByID(ctx, *in.RentalID); err != nil {
				return err
			}
			p.RentalID = in.RentalID
		}
		if saleSet {
			if _, err := repos.Sales.GetByID(ctx, *in.SaleID); err != nil {
				return err
			}
			p.SaleID = in.SaleID
		}

		if err := repos.Payments.Create(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("paymentService.RecordPayment", err)
		return nil, err
	}

	logger.ExitMethod("paymentService.RecordPayment", "paymentID", created.ID)
	return created, nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	return s.store.Repositories().Payments.List(ctx, filter)
}

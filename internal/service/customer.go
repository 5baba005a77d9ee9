package service

import (
	"context"
	"strings"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) CreateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	logger.EnterMethod("customerService.CreateCustomer")

	c := &domain.Customer{}
	applyCustomer(c, in)
	if err := validateCustomer(c); err != nil {
		logger.ExitMethodWithError("customerService.CreateCustomer", err)
		return nil, err
	}
	if err := s.store.Repositories().Customers.Create(ctx, c); err != nil {
		logger.ExitMethodWithError("customerService.CreateCustomer", err)
		return nil, err
	}

	logger.ExitMethod("customerService.CreateCustomer", "customerID", c.ID)
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.store.Repositories().Customers.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (*domain.Customer, error) {
	logger.EnterMethod("customerService.UpdateCustomer", "customerID", id)

	var updated *domain.Customer
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		c, err := repos.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		applyCustomer(c, in)
		if err := validateCustomer(c); err != nil {
			return err
		}
		if err := repos.Customers.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("customerService.UpdateCustomer", err)
		return nil, err
	}

	logger.ExitMethod("customerService.UpdateCustomer", "customerID", id)
	return updated, nil
}

// DeleteCustomer refuses while the customer still has rentals out. Past
// rentals keep their customer name snapshot.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	logger.EnterMethod("customerService.DeleteCustomer", "customerID", id)

	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Customers.GetByID(ctx, id); err != nil {
			return err
		}
		open, err := repos.Rentals.CountOpenByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if open > 0 {
			return domain.NewValidationError("id", "customer has rentals that are not returned")
		}
		return repos.Customers.Delete(ctx, id)
	})
	if err != nil {
		logger.ExitMethodWithError("customerService.DeleteCustomer", err)
		return err
	}

	logger.ExitMethod("customerService.DeleteCustomer", "customerID", id)
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Repositories().Customers.List(ctx)
}

func applyCustomer(c *domain.Customer, in CustomerInput) {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		c.Address = in.Address
	}
	if in.NationalID != nil {
		c.NationalID = in.NationalID
	}
	if in.PhotoURL != nil {
		c.PhotoURL = in.PhotoURL
	}
}

func validateCustomer(c *domain.Customer) error {
	if c.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if c.Phone == "" {
		return domain.NewValidationError("phone", "phone is required")
	}
	return nil
}

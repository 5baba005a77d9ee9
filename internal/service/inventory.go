package service

import (
	"context"
	"strings"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type inventoryService struct {
	store repository.Store
}

func NewInventoryService(store repository.Store) InventoryService {
	return &inventoryService{store: store}
}

func (s *inventoryService) CreateItem(ctx context.Context, in ItemInput) (*domain.StockedItem, error) {
	logger.EnterMethod("inventoryService.CreateItem")

	it := &domain.InventoryItem{DailyRentPrice: decimal.Zero}
	applyItem(it, in)
	if err := validateItem(it); err != nil {
		logger.ExitMethodWithError("inventoryService.CreateItem", err)
		return nil, err
	}
	if err := s.store.Repositories().Items.Create(ctx, it); err != nil {
		logger.ExitMethodWithError("inventoryService.CreateItem", err)
		return nil, err
	}

	logger.ExitMethod("inventoryService.CreateItem", "itemID", it.ID)
	return &domain.StockedItem{InventoryItem: *it, Available: it.TotalQuantity}, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*domain.StockedItem, error) {
	repos := s.store.Repositories()
	it, err := repos.Items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	open, err := repos.Rentals.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.StockedItem{InventoryItem: *it, Available: domain.AvailableQuantity(*it, open)}, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, in ItemInput) (*domain.StockedItem, error) {
	logger.EnterMethod("inventoryService.UpdateItem", "itemID", id)

	var updated *domain.StockedItem
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		it, err := repos.Items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		applyItem(it, in)
		if err := validateItem(it); err != nil {
			return err
		}
		if err := repos.Items.Update(ctx, it); err != nil {
			return err
		}
		open, err := repos.Rentals.ListOpen(ctx)
		if err != nil {
			return err
		}
		updated = &domain.StockedItem{InventoryItem: *it, Available: domain.AvailableQuantity(*it, open)}
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("inventoryService.UpdateItem", err)
		return nil, err
	}

	logger.ExitMethod("inventoryService.UpdateItem", "itemID", id)
	return updated, nil
}

// DeleteItem refuses while any unit of the item is out on rental.
func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	logger.EnterMethod("inventoryService.DeleteItem", "itemID", id)

	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Items.GetForUpdate(ctx, id); err != nil {
			return err
		}
		open, err := repos.Rentals.ListOpen(ctx)
		if err != nil {
			return err
		}
		if domain.OutstandingQuantity(open, id) > 0 {
			return domain.NewValidationError("id", "item is out on rental")
		}
		return repos.Items.Delete(ctx, id)
	})
	if err != nil {
		logger.ExitMethodWithError("inventoryService.DeleteItem", err)
		return err
	}

	logger.ExitMethod("inventoryService.DeleteItem", "itemID", id)
	return nil
}

// ListInventory returns every item with its current availability.
func (s *inventoryService) ListInventory(ctx context.Context) ([]domain.StockedItem, error) {
	repos := s.store.Repositories()
	items, err := repos.Items.List(ctx)
	if err != nil {
		return nil, err
	}
	open, err := repos.Rentals.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return domain.WithAvailability(items, open), nil
}

func applyItem(it *domain.InventoryItem, in ItemInput) {
	if in.Name != nil {
		it.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		it.Category = in.Category
	}
	if in.Description != nil {
		it.Description = in.Description
	}
	if in.DailyRentPrice != nil {
		it.DailyRentPrice = *in.DailyRentPrice
	}
	if in.SellingPrice != nil {
		price := *in.SellingPrice
		it.SellingPrice = &price
	}
	if in.TotalQuantity != nil {
		it.TotalQuantity = *in.TotalQuantity
	}
	if in.PhotoURL != nil {
		it.PhotoURL = in.PhotoURL
	}
}

func validateItem(it *domain.InventoryItem) error {
	if it.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if it.DailyRentPrice.IsNegative() {
		return domain.NewValidationError("dailyRentPrice", "daily rent price can not be negative")
	}
	if it.SellingPrice != nil && it.SellingPrice.IsNegative() {
		return domain.NewValidationError("sellingPrice", "selling price can not be negative")
	}
	if it.TotalQuantity < 0 {
		return domain.NewValidationError("totalQuantity", "total quantity can not be negative")
	}
	return nil
}

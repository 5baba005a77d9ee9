package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type saleService struct {
	store repository.Store
	clock Clock
}

func NewSaleService(store repository.Store, clock Clock) SaleService {
	return &saleService{store: store, clock: clock}
}

// CreateSale sells stock outright. Stock decrement, the sale and its payment
// are written together or not at all.
func (s *saleService) CreateSale(ctx context.Context, in CreateSaleInput) (*domain.Sale, error) {
	logger.EnterMethod("saleService.CreateSale", "customerName", in.CustomerName, "lines", len(in.Items))

	date := in.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	var created *domain.Sale
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if len(in.Items) == 0 {
			return domain.NewEmptyOperationError("sale has no items")
		}

		name := strings.TrimSpace(in.CustomerName)
		var customerID *string
		if nonEmpty(in.CustomerID) {
			c, err := repos.Customers.GetByID(ctx, *in.CustomerID)
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidCustomerError(*in.CustomerID)
			}
			if err != nil {
				return err
			}
			id := c.ID
			customerID = &id
			if name == "" {
				name = c.Name
			}
		}
		if name == "" {
			return domain.NewValidationError("customerName", "customer name is required")
		}

		req := newStockRequest()
		for i, line := range in.Items {
			if err := validateItemID(i, line.ItemID); err != nil {
				return err
			}
			if err := validateQuantity(i, line.Quantity); err != nil {
				return err
			}
			if line.UnitPrice != nil && line.UnitPrice.IsNegative() {
				return domain.NewValidationError(fmt.Sprintf("items[%d].unitPrice", i), "unit price can not be negative")
			}
			req.add(line.ItemID, line.Quantity)
		}

		items, err := req.reserve(ctx, repos)
		if err != nil {
			return err
		}

		lines := make([]domain.SaleItem, 0, len(in.Items))
		for i, line := range in.Items {
			it := items[line.ItemID]
			price, err := unitPrice(i, line, it)
			if err != nil {
				return err
			}
			lines = append(lines, domain.NewSaleItem(it.ID, it.Name, line.Quantity, price))
		}

		for _, id := range req.order {
			if err := repos.Items.AdjustQuantity(ctx, id, -req.quantities[id]); err != nil {
				return err
			}
		}

		sale := &domain.Sale{
			CustomerID:   customerID,
			CustomerName: name,
			Items:        lines,
			TotalAmount:  domain.SaleTotal(lines),
			Date:         date,
		}
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}

		saleID := sale.ID
		note := domain.SalePaymentNote
		payment := &domain.Payment{
			SaleID: &saleID,
			Amount: sale.TotalAmount,
			Date:   sale.Date,
			Note:   &note,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("saleService.CreateSale", err)
		return nil, err
	}

	logger.ExitMethod("saleService.CreateSale", "saleID", created.ID, "total", created.TotalAmount.StringFixed(2))
	return created, nil
}

func unitPrice(index int, line SaleLineInput, it *domain.InventoryItem) (decimal.Decimal, error) {
	if line.UnitPrice != nil {
		return *line.UnitPrice, nil
	}
	if it.SellingPrice != nil {
		return *it.SellingPrice, nil
	}
	return decimal.Zero, domain.NewValidationError(fmt.Sprintf("items[%d].unitPrice", index), "item has no selling price, a unit price is required")
}

func (s *saleService) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	return s.store.Repositories().Sales.GetByID(ctx, id)
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.store.Repositories().Sales.List(ctx)
}

package service

import (
	"context"

	"rentdesk-backend/internal/domain"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type InventoryService interface {
	CreateItem(ctx context.Context, in ItemInput) (*domain.StockedItem, error)
	GetItem(ctx context.Context, id string) (*domain.StockedItem, error)
	UpdateItem(ctx context.Context, id string, in ItemInput) (*domain.StockedItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListInventory(ctx context.Context) ([]domain.StockedItem, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	ReturnRentalItems(ctx context.Context, rentalID string, itemIDs []string) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*RentalDetail, error)
	ListRentals(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error)
	MarkOverdueRentals(ctx context.Context) ([]string, error)
}

type SaleService interface {
	CreateSale(ctx context.Context, in CreateSaleInput) (*domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, in PaymentInput) (*domain.Payment, error)
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
}

type NoteService interface {
	AddNote(ctx context.Context, content string) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type ReportService interface {
	GetReport(ctx context.Context, window domain.Window) (*domain.ReportSummary, error)
	GetReports(ctx context.Context) ([]domain.ReportSummary, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

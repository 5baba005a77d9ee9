package repository

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	// GetForUpdate reads an item and holds it until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	// AdjustQuantity adds delta to total_quantity. The result may not go below zero.
	AdjustQuantity(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Count(ctx context.Context) (int, error)
}

type RentalRepository interface {
	// Create stores the rental with its lines in order.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	// List returns matching rentals newest first.
	List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, error)
	// ListOpen returns every rental whose stored status is not Returned.
	ListOpen(ctx context.Context) ([]domain.Rental, error)
	UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error
	// UpdateReturns persists line return flags and the rental status.
	UpdateReturns(ctx context.Context, rental *domain.Rental) error
	// MarkOverdue moves Active and Partial Return rentals expected back before
	// cutoff to Overdue and returns their ids.
	MarkOverdue(ctx context.Context, cutoff time.Time) ([]string, error)
	// CountOpenByCustomer counts rentals of a customer that are not Returned.
	CountOpenByCustomer(ctx context.Context, customerID string) (int, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	// List returns notes newest first.
	List(ctx context.Context) ([]domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// Repositories is the set of collections bound to one connection or transaction.
type Repositories struct {
	Customers CustomerRepository
	Items     ItemRepository
	Rentals   RentalRepository
	Sales     SaleRepository
	Payments  PaymentRepository
	Notes     NoteRepository
}

// TxFunc runs with repositories bound to a transaction. Returning an error rolls
// every write back.
type TxFunc func(ctx context.Context, repos Repositories) error

// Store is a persistence backend.
type Store interface {
	Repositories() Repositories
	RunInTx(ctx context.Context, fn TxFunc) error
	Close() error
}

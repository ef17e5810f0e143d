package app

import (
	"context"

	"github.com/jcmexdev/modular-commerce/internal/order/domain"
)

// StockChecker is the order module's view of the product module. It is
// declared here, on the consumer side, so the order core never imports
// another module's packages; the adapter lives under adapters/.
type StockChecker interface {
	// GetStock returns the current stock snapshot for a product.
	GetStock(ctx context.Context, productID string) (domain.StockSnapshot, error)
	// Decrement atomically subtracts quantity from the product's stock
	// and returns the new quantity. It fails, changing nothing, when the
	// balance is insufficient.
	Decrement(ctx context.Context, productID string, quantity int) (int, error)
	// Restore gives quantity back, compensating a decrement that is part
	// of an order that could not complete.
	Restore(ctx context.Context, productID string, quantity int) error
}

// PaymentLookup is the order module's view of the payment module.
type PaymentLookup interface {
	GetByOrderID(ctx context.Context, orderID string) (domain.PaymentRecord, error)
}

// Repository is the driven port for order persistence.
type Repository interface {
	// CreateWithItems persists the order and all its items in a single
	// transaction.
	CreateWithItems(ctx context.Context, o *domain.Order) error
	// FindByID returns the order with its items, or domain.ErrNotFound.
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// UpdateStatus persists a status transition, or domain.ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}

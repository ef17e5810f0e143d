package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/invoice/domain"
)

// Repository persists invoices.
type Repository interface {
	Save(ctx context.Context, invoice domain.Invoice) error
	FindByOrderID(ctx context.Context, orderID string) (domain.Invoice, error)
}

// OrderSummary is the slice of an order the invoice module needs.
type OrderSummary struct {
	ID          string
	TotalAmount decimal.Decimal
}

// OrderLookup resolves orders. Implemented by an adapter over the order
// module.
type OrderLookup interface {
	FindByID(ctx context.Context, id string) (OrderSummary, error)
}

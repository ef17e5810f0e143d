package app

import (
	"context"

	"github.com/jcmexdev/modular-commerce/internal/product/domain"
)

// Repository is the driven port for product persistence.
type Repository interface {
	Save(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAllByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// AdjustStock subtracts delta from the product's stock in a single
	// conditional UPDATE and returns the new quantity. It must fail
	// without modifying anything when the result would be negative.
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
}

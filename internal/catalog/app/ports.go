package app

import (
	"context"

	"github.com/jcmexdev/modular-commerce/internal/catalog/domain"
)

// Repository persists catalogs and their product associations.
type Repository interface {
	Save(ctx context.Context, catalog domain.Catalog) error
	FindByID(ctx context.Context, id string) (domain.Catalog, error)
	AddProducts(ctx context.Context, catalogID string, productIDs []string) error
	RemoveProduct(ctx context.Context, catalogID, productID string) error
}

// ProductChecker answers whether a product exists. Implemented by an
// adapter over the product module.
type ProductChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// Package productport adapts the product module's use cases to the
// catalog module's ProductChecker port.
package productport

import (
	"context"

	catalogapp "github.com/jcmexdev/modular-commerce/internal/catalog/app"
	productapp "github.com/jcmexdev/modular-commerce/internal/product/app"
)

type ProductChecker struct {
	products productapp.UseCases
}

var _ catalogapp.ProductChecker = (*ProductChecker)(nil)

func New(products productapp.UseCases) *ProductChecker {
	return &ProductChecker{products: products}
}

func (p *ProductChecker) ExistsByID(ctx context.Context, id string) (bool, error) {
	return p.products.ExistsByID(ctx, id)
}

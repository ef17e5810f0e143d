// Package productport adapts the product module's use cases to the order
// module's StockChecker port. In a service split this adapter is where an
// HTTP or gRPC client would go; the port contract would not change.
package productport

import (
	"context"

	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
	orderdomain "github.com/jcmexdev/modular-commerce/internal/order/domain"
	productapp "github.com/jcmexdev/modular-commerce/internal/product/app"
)

// StockChecker implements orderapp.StockChecker on top of the product
// module.
type StockChecker struct {
	products productapp.UseCases
}

var _ orderapp.StockChecker = (*StockChecker)(nil)

func New(products productapp.UseCases) *StockChecker {
	return &StockChecker{products: products}
}

func (s *StockChecker) GetStock(ctx context.Context, productID string) (orderdomain.StockSnapshot, error) {
	info, err := s.products.GetStock(ctx, productID)
	if err != nil {
		return orderdomain.StockSnapshot{}, err
	}
	return orderdomain.StockSnapshot{
		ProductID:   info.ProductID,
		Name:        info.Name,
		Description: info.Description,
		Price:       info.Price,
		Quantity:    info.Quantity,
	}, nil
}

func (s *StockChecker) Decrement(ctx context.Context, productID string, quantity int) (int, error) {
	out, err := s.products.ChangeStock(ctx, productID, quantity)
	if err != nil {
		return 0, err
	}
	return out.NewStock, nil
}

func (s *StockChecker) Restore(ctx context.Context, productID string, quantity int) error {
	_, err := s.products.ChangeStock(ctx, productID, -quantity)
	return err
}

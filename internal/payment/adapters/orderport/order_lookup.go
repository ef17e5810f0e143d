// Package orderport adapts the order module's use cases to the payment
// module's OrderLookup port.
package orderport

import (
	"context"

	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
	paymentapp "github.com/jcmexdev/modular-commerce/internal/payment/app"
)

// OrderLookup implements paymentapp.OrderLookup on top of the order
// module.
type OrderLookup struct {
	orders orderapp.UseCases
}

var _ paymentapp.OrderLookup = (*OrderLookup)(nil)

func New(orders orderapp.UseCases) *OrderLookup {
	return &OrderLookup{orders: orders}
}

func (o *OrderLookup) FindByID(ctx context.Context, orderID string) (paymentapp.OrderSummary, error) {
	order, err := o.orders.FindByID(ctx, orderID)
	if err != nil {
		return paymentapp.OrderSummary{}, err
	}
	return paymentapp.OrderSummary{ID: order.ID, TotalAmount: order.TotalAmount}, nil
}

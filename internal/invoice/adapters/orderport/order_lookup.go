// Package orderport adapts the order module's use cases to the invoice
// module's OrderLookup port.
package orderport

import (
	"context"

	invoiceapp "github.com/jcmexdev/modular-commerce/internal/invoice/app"
	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
)

type OrderLookup struct {
	orders orderapp.UseCases
}

var _ invoiceapp.OrderLookup = (*OrderLookup)(nil)

func New(orders orderapp.UseCases) *OrderLookup {
	return &OrderLookup{orders: orders}
}

func (o *OrderLookup) FindByID(ctx context.Context, id string) (invoiceapp.OrderSummary, error) {
	order, err := o.orders.FindByID(ctx, id)
	if err != nil {
		return invoiceapp.OrderSummary{}, err
	}
	return invoiceapp.OrderSummary{ID: order.ID, TotalAmount: order.TotalAmount}, nil
}

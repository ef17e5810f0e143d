// Package paymentport adapts the payment module's use cases to the order
// module's PaymentLookup port.
//
// The order and payment modules reference each other (order reads payment
// status, payment reads order totals), so this adapter binds its target
// late: wiring constructs it empty, builds both services, then calls
// Bind. Bind must run before the server starts taking requests.
package paymentport

import (
	"context"

	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
	orderdomain "github.com/jcmexdev/modular-commerce/internal/order/domain"
	paymentapp "github.com/jcmexdev/modular-commerce/internal/payment/app"
)

// PaymentLookup implements orderapp.PaymentLookup on top of the payment
// module.
type PaymentLookup struct {
	payments paymentapp.UseCases
}

var _ orderapp.PaymentLookup = (*PaymentLookup)(nil)

// New returns an unbound adapter; call Bind before use.
func New() *PaymentLookup {
	return &PaymentLookup{}
}

// Bind wires the adapter to the payment module.
func (p *PaymentLookup) Bind(payments paymentapp.UseCases) {
	p.payments = payments
}

func (p *PaymentLookup) GetByOrderID(ctx context.Context, orderID string) (orderdomain.PaymentRecord, error) {
	payment, err := p.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return orderdomain.PaymentRecord{}, err
	}
	return orderdomain.PaymentRecord{
		ID:      payment.ID,
		OrderID: payment.OrderID,
		Status:  string(payment.Status),
		Method:  payment.Method,
		Amount:  payment.Amount,
		PaidAt:  payment.PaidAt,
	}, nil
}

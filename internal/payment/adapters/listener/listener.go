// Package listener reacts to the payment module's events.
package listener

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/modular-commerce/internal/payment/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metrics"
)

// Register subscribes the payment listeners on the bus.
func Register(bus *events.Bus) {
	bus.Subscribe(domain.PaymentConfirmed{}.Name(), onPaymentConfirmed)
}

func onPaymentConfirmed(ctx context.Context, e events.Event) {
	ev, ok := e.(domain.PaymentConfirmed)
	if !ok {
		return
	}
	metrics.PaymentsConfirmed.Inc()
	slog.InfoContext(ctx, "payment confirmed event received",
		"payment_id", ev.PaymentID,
		"order_id", ev.OrderID,
	)
}

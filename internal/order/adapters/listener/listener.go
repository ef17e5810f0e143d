// Package listener reacts to the order module's own lifecycle events.
package listener

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/modular-commerce/internal/order/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metrics"
)

// Register subscribes the order listeners on the bus.
func Register(bus *events.Bus) {
	bus.Subscribe(domain.OrderCreated{}.Name(), onOrderCreated)
	bus.Subscribe(domain.OrderShipped{}.Name(), onOrderShipped)
	bus.Subscribe(domain.OrderCanceled{}.Name(), onOrderCanceled)
}

func onOrderCreated(ctx context.Context, e events.Event) {
	ev, ok := e.(domain.OrderCreated)
	if !ok {
		return
	}
	metrics.OrdersCreated.Inc()
	slog.InfoContext(ctx, "order created event received",
		"order_id", ev.OrderID,
		"client_id", ev.ClientID,
		"total_amount", ev.TotalAmount,
	)
}

func onOrderShipped(ctx context.Context, e events.Event) {
	ev, ok := e.(domain.OrderShipped)
	if !ok {
		return
	}
	metrics.OrdersShipped.Inc()
	slog.InfoContext(ctx, "order shipped event received", "order_id", ev.OrderID)
}

func onOrderCanceled(ctx context.Context, e events.Event) {
	ev, ok := e.(domain.OrderCanceled)
	if !ok {
		return
	}
	metrics.OrdersCanceled.Inc()
	slog.InfoContext(ctx, "order canceled event received", "order_id", ev.OrderID)
}

// Package listener reacts to the invoice module's events.
package listener

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/modular-commerce/internal/invoice/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metrics"
)

// Register subscribes the invoice listeners on the bus.
func Register(bus *events.Bus) {
	bus.Subscribe(domain.InvoiceGenerated{}.Name(), onInvoiceGenerated)
}

func onInvoiceGenerated(ctx context.Context, e events.Event) {
	ev, ok := e.(domain.InvoiceGenerated)
	if !ok {
		return
	}
	metrics.InvoicesGenerated.Inc()
	slog.InfoContext(ctx, "invoice generated event received",
		"invoice_id", ev.InvoiceID,
		"order_id", ev.OrderID,
	)
}

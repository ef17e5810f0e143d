// Package listener reacts to the product module's stock events.
package listener

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metrics"
	"github.com/jcmexdev/modular-commerce/internal/product/domain"
)

// Register subscribes the product listeners on the bus.
func Register(bus *events.Bus) {
	bus.Subscribe(domain.StockReduced{}.Name(), onStockReduced)
}

func onStockReduced(ctx context.Context, e events.Event) {
	ev, ok := e.(domain.StockReduced)
	if !ok {
		return
	}
	metrics.StockReductions.Inc()
	slog.InfoContext(ctx, "stock reduced event received",
		"product_id", ev.ProductID,
		"quantity", ev.Quantity,
	)
}

// Package metrics exposes the Prometheus counters the event listeners
// maintain. Counters only; latency histograms live in the tracing layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_orders_created_total",
		Help: "Orders successfully created.",
	})

	OrdersShipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_orders_shipped_total",
		Help: "Orders marked as shipped.",
	})

	OrdersCanceled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_orders_canceled_total",
		Help: "Orders canceled.",
	})

	StockReductions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_stock_reductions_total",
		Help: "Stock decrement operations applied.",
	})

	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_payments_confirmed_total",
		Help: "Payments processed and confirmed.",
	})

	InvoicesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_invoices_generated_total",
		Help: "Invoices generated.",
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "commerce_events_dropped_total",
		Help: "Domain events dropped because the bus buffer was full.",
	})
)

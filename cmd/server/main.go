package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogproductport "github.com/jcmexdev/modular-commerce/internal/catalog/adapters/productport"
	catalogsqlite "github.com/jcmexdev/modular-commerce/internal/catalog/adapters/sqlite"
	catalogapp "github.com/jcmexdev/modular-commerce/internal/catalog/app"
	clientsqlite "github.com/jcmexdev/modular-commerce/internal/client/adapters/sqlite"
	clientapp "github.com/jcmexdev/modular-commerce/internal/client/app"
	"github.com/jcmexdev/modular-commerce/internal/httpx"
	invoicelistener "github.com/jcmexdev/modular-commerce/internal/invoice/adapters/listener"
	invoiceorderport "github.com/jcmexdev/modular-commerce/internal/invoice/adapters/orderport"
	invoicesqlite "github.com/jcmexdev/modular-commerce/internal/invoice/adapters/sqlite"
	invoiceapp "github.com/jcmexdev/modular-commerce/internal/invoice/app"
	orderlistener "github.com/jcmexdev/modular-commerce/internal/order/adapters/listener"
	orderpaymentport "github.com/jcmexdev/modular-commerce/internal/order/adapters/paymentport"
	orderproductport "github.com/jcmexdev/modular-commerce/internal/order/adapters/productport"
	ordersqlite "github.com/jcmexdev/modular-commerce/internal/order/adapters/sqlite"
	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
	paymentlistener "github.com/jcmexdev/modular-commerce/internal/payment/adapters/listener"
	paymentorderport "github.com/jcmexdev/modular-commerce/internal/payment/adapters/orderport"
	paymentsqlite "github.com/jcmexdev/modular-commerce/internal/payment/adapters/sqlite"
	paymentapp "github.com/jcmexdev/modular-commerce/internal/payment/app"
	"github.com/jcmexdev/modular-commerce/internal/pkg/cache"
	"github.com/jcmexdev/modular-commerce/internal/pkg/config"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
	"github.com/jcmexdev/modular-commerce/internal/pkg/telemetry"
	productlistener "github.com/jcmexdev/modular-commerce/internal/product/adapters/listener"
	productsqlite "github.com/jcmexdev/modular-commerce/internal/product/adapters/sqlite"
	productapp "github.com/jcmexdev/modular-commerce/internal/product/app"
)

func main() {
	cfg := config.Load()
	telemetry.InitLogger(cfg.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	db, err := sqlitedb.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	productRepo, err := productsqlite.New(db)
	if err != nil {
		fatal("products schema", err)
	}
	orderRepo, err := ordersqlite.New(db)
	if err != nil {
		fatal("orders schema", err)
	}
	paymentRepo, err := paymentsqlite.New(db)
	if err != nil {
		fatal("payments schema", err)
	}
	clientRepo, err := clientsqlite.New(db)
	if err != nil {
		fatal("clients schema", err)
	}
	catalogRepo, err := catalogsqlite.New(db)
	if err != nil {
		fatal("catalogs schema", err)
	}
	invoiceRepo, err := invoicesqlite.New(db)
	if err != nil {
		fatal("invoices schema", err)
	}

	var sink events.Sink
	if cfg.EventSink == "kafka" {
		kafkaSink := events.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaSink.Close()
		sink = kafkaSink
		slog.Info("publishing domain events to kafka", "topic", cfg.KafkaTopic)
	} else {
		bus := events.NewBus(cfg.EventBusBuffer, cfg.EventBusWorkers)
		defer bus.Close()
		orderlistener.Register(bus)
		productlistener.Register(bus)
		paymentlistener.Register(bus)
		invoicelistener.Register(bus)
		sink = bus
	}

	var idempotencyCache cache.Cache
	if cfg.RedisAddr != "" {
		idempotencyCache = cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)
	} else {
		idempotencyCache = cache.NewMemoryCache(cfg.ServiceName)
	}

	productSvc := productapp.NewService(productRepo, sink)
	clientSvc := clientapp.NewService(clientRepo)
	catalogSvc := catalogapp.NewService(catalogRepo, catalogproductport.New(productSvc))

	// Order and payment consult each other, so the payment lookup is
	// bound after both services exist.
	paymentLookup := orderpaymentport.New()
	orderSvc := orderapp.NewService(orderRepo, orderproductport.New(productSvc), paymentLookup, sink, idempotencyCache)
	paymentSvc := paymentapp.NewService(paymentRepo, paymentorderport.New(orderSvc), sink, idempotencyCache)
	paymentLookup.Bind(paymentSvc)

	invoiceSvc := invoiceapp.NewService(invoiceRepo, invoiceorderport.New(orderSvc), sink)

	handler := httpx.NewHandler(orderSvc, productSvc, catalogSvc, clientSvc, paymentSvc, invoiceSvc)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("http server running", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}

func fatal(what string, err error) {
	slog.Error("startup failed", "stage", what, "error", err)
	os.Exit(1)
}

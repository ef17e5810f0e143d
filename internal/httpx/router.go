package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(AttachMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", handler.CreateOrder)
		r.Get("/orders/{id}", handler.GetOrderByID)
		r.Post("/orders/{id}/cancel", handler.CancelOrder)
		r.Patch("/orders/{id}/pay", handler.MarkOrderAsPaid)
		r.Patch("/orders/{id}/ship", handler.ShipOrder)

		r.Post("/products", handler.CreateProduct)
		r.Get("/products/category/{category}", handler.ListProductsByCategory)

		r.Post("/catalogs", handler.CreateCatalog)
		r.Post("/catalogs/{id}/products", handler.AddProductsToCatalog)
		r.Delete("/catalogs/{id}/products/{productId}", handler.RemoveProductFromCatalog)

		r.Post("/clients", handler.RegisterClient)

		r.Post("/payments/{orderId}/process", handler.ProcessPayment)

		r.Post("/invoices/generate/{orderId}", handler.GenerateInvoice)
	})

	return r
}

// Package httpx is the HTTP boundary: one chi router, one handler per
// module surface, uniform success bodies and problem-details failures.
package httpx

import (
	"encoding/json"
	"net/http"

	catalogapp "github.com/jcmexdev/modular-commerce/internal/catalog/app"
	clientapp "github.com/jcmexdev/modular-commerce/internal/client/app"
	invoiceapp "github.com/jcmexdev/modular-commerce/internal/invoice/app"
	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
	paymentapp "github.com/jcmexdev/modular-commerce/internal/payment/app"
	productapp "github.com/jcmexdev/modular-commerce/internal/product/app"
)

// Handler serves every module's routes. It depends only on the use-case
// interfaces, never on repositories or adapters.
type Handler struct {
	orders   orderapp.UseCases
	products productapp.UseCases
	catalogs catalogapp.UseCases
	clients  clientapp.UseCases
	payments paymentapp.UseCases
	invoices invoiceapp.UseCases
}

func NewHandler(
	orders orderapp.UseCases,
	products productapp.UseCases,
	catalogs catalogapp.UseCases,
	clients clientapp.UseCases,
	payments paymentapp.UseCases,
	invoices invoiceapp.UseCases,
) *Handler {
	return &Handler{
		orders:   orders,
		products: products,
		catalogs: catalogs,
		clients:  clients,
		payments: payments,
		invoices: invoices,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into v; a malformed body becomes a
// validation problem at the call site.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

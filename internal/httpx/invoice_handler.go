package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	out, err := h.invoices.Generate(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, InvoiceResponse{
		InvoiceID:     out.Invoice.ID,
		InvoiceNumber: out.Invoice.InvoiceNumber,
		GeneratedAt:   sqlitedb.FormatTime(out.Invoice.GeneratedAt),
		Message:       out.Message,
	})
}

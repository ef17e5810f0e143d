package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ProcessPayment charges an order; the method comes from the method
// query parameter.
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	method := r.URL.Query().Get("method")

	out, err := h.payments.Process(r.Context(), orderID, method)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IDMessageResponse{ID: out.ID, Message: out.Message})
}

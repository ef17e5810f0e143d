package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
	productapp "github.com/jcmexdev/modular-commerce/internal/product/app"
)

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, r, fault.Validationf("Corpo da requisição inválido."))
		return
	}

	out, err := h.products.CreateProduct(r.Context(), productapp.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, IDMessageResponse{ID: out.ID, Message: out.Message})
}

func (h *Handler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeProblem(w, r, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			StockQuantity: p.StockQuantity,
			Category:      p.Category,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

package httpx

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/jcmexdev/modular-commerce/internal/catalog/app"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

func (h *Handler) CreateCatalog(w http.ResponseWriter, r *http.Request) {
	var req CreateCatalogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, r, fault.Validationf("Corpo da requisição inválido."))
		return
	}

	out, err := h.catalogs.Create(r.Context(), catalogapp.CreateInput{
		Name:        req.Name,
		ProductList: req.ProductList,
	})
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, IDMessageResponse{ID: out.Catalog.ID, Message: out.Message})
}

// AddProductsToCatalog reads the product ids from the productsId query
// parameter as a comma-separated list.
func (h *Handler) AddProductsToCatalog(w http.ResponseWriter, r *http.Request) {
	catalogID := chi.URLParam(r, "id")
	productIDs := splitIDs(r.URL.Query().Get("productsId"))

	out, err := h.catalogs.AddProducts(r.Context(), catalogID, productIDs)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogMutationResponse{
		CatalogID:  out.CatalogID,
		ProductIDs: out.ProductIDs,
		Message:    out.Message,
	})
}

func (h *Handler) RemoveProductFromCatalog(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalogs.RemoveProduct(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "productId"))
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogMutationResponse{
		CatalogID:  out.CatalogID,
		ProductIDs: out.ProductIDs,
		Message:    out.Message,
	})
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

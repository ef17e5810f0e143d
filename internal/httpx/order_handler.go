package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	orderapp "github.com/jcmexdev/modular-commerce/internal/order/app"
	orderdomain "github.com/jcmexdev/modular-commerce/internal/order/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metadata"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

// CreateOrder validates stock, persists the order and answers with the
// full order representation.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, r, fault.Validationf("Corpo da requisição inválido."))
		return
	}

	items := make([]orderapp.CreateOrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, orderapp.CreateOrderItem{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	slog.InfoContext(r.Context(), "creating order",
		"request_id", metadata.RequestID(r.Context()),
		"client_id", req.ClientID,
	)

	order, err := h.orders.CreateOrder(r.Context(), orderapp.CreateOrderInput{
		ClientID: req.ClientID,
		Items:    items,
	})
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

// GetOrderByID returns a single order with its items.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.CancelOrder)
}

func (h *Handler) MarkOrderAsPaid(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.MarkOrderAsPaid)
}

func (h *Handler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.ShipOrder)
}

type transitionFn func(ctx context.Context, orderID string) (orderapp.TransitionOutput, error)

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn) {
	out, err := fn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TransitionResponse{OrderID: out.OrderID, Message: out.Message})
}

func mapOrderToResponse(order *orderdomain.Order) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		ClientID:    order.ClientID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   sqlitedb.FormatTime(order.CreatedAt),
	}
	for _, it := range order.Items {
		resp.Products = append(resp.Products, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp
}

// Package app implements the order lifecycle use cases: creation with
// stock validation and compensation, cancellation, payment marking and
// shipping.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jcmexdev/modular-commerce/internal/order/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/cache"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metadata"
)

// UseCases is the primary port consumed by the HTTP layer and by the
// payment and invoice modules (through their own adapters).
type UseCases interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (TransitionOutput, error)
	MarkOrderAsPaid(ctx context.Context, orderID string) (TransitionOutput, error)
	ShipOrder(ctx context.Context, orderID string) (TransitionOutput, error)
}

type CreateOrderInput struct {
	ClientID string
	Items    []CreateOrderItem
}

// CreateOrderItem carries only the product reference and quantity; unit
// prices always come from the stock lookup, never from the caller.
type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

// TransitionOutput is the confirmation returned by every status
// transition use case.
type TransitionOutput struct {
	OrderID string
	Message string
}

// idempotencyTTL bounds how long a replayed x-idempotency-key returns the
// original order instead of creating a new one.
const idempotencyTTL = 24 * time.Hour

// Service implements UseCases.
type Service struct {
	repo     Repository
	stock    StockChecker
	payments PaymentLookup
	sink     events.Sink
	cache    cache.Cache
	now      func() time.Time
}

var _ UseCases = (*Service)(nil)

func NewService(repo Repository, stock StockChecker, payments PaymentLookup, sink events.Sink, c cache.Cache) *Service {
	return &Service{
		repo:     repo,
		stock:    stock,
		payments: payments,
		sink:     sink,
		cache:    c,
		now:      time.Now,
	}
}

type validatedItem struct {
	snapshot domain.StockSnapshot
	quantity int
}

// CreateOrder validates stock for every item concurrently, computes the
// total from the fetched prices, persists order plus items in one
// transaction, then decrements stock per item. A failed decrement rolls
// back the decrements already applied (LIFO) and cancels the order, so a
// request never leaves the stock ledger and the order book disagreeing.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if err := validateCreateOrder(in); err != nil {
		return nil, err
	}

	idempKey := metadata.IdempotencyKey(ctx)
	if idempKey != "" {
		if replayed, err := s.replayOrder(ctx, idempKey); err != nil {
			return nil, err
		} else if replayed != nil {
			slog.InfoContext(ctx, "order creation replayed from idempotency key", "order_id", replayed.ID)
			return replayed, nil
		}
	}

	validated, err := s.validateStock(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, v := range validated {
		total = total.Add(v.snapshot.Price.Mul(decimal.NewFromInt(int64(v.quantity))))
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		TotalAmount: total,
		Status:      domain.StatusPending,
		CreatedAt:   s.now().UTC(),
	}
	order.Items = make([]domain.OrderItem, len(validated))
	for i, v := range validated {
		order.Items[i] = domain.OrderItem{
			OrderID:     order.ID,
			ProductID:   v.snapshot.ProductID,
			ProductName: v.snapshot.Name,
			Quantity:    v.quantity,
			UnitPrice:   v.snapshot.Price,
			TotalPrice:  v.snapshot.Price.Mul(decimal.NewFromInt(int64(v.quantity))),
		}
	}

	if err := s.repo.CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	slog.InfoContext(ctx, "order persisted", "order_id", order.ID, "client_id", order.ClientID, "total", total.String())

	if err := s.decrementStock(ctx, order); err != nil {
		return nil, err
	}

	s.sink.Publish(ctx, domain.OrderCreated{
		ClientID:    order.ClientID,
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
	})

	if idempKey != "" {
		key := s.cache.GenerateKey("create_order", idempKey)
		if err := s.cache.Set(ctx, key, order.ID, idempotencyTTL); err != nil {
			slog.WarnContext(ctx, "failed to record idempotency key", "error", err)
		}
	}

	return order, nil
}

func (s *Service) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.findOrder(ctx, orderID)
}

// CancelOrder moves a PENDING or PAID order to CANCELED. Canceling an
// already canceled order succeeds without doing anything; a SHIPPED order
// cannot be canceled.
func (s *Service) CancelOrder(ctx context.Context, orderID string) (TransitionOutput, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return TransitionOutput{}, err
	}

	switch order.Status {
	case domain.StatusCanceled:
		// Idempotent: repeating the cancellation is not an error.
		return TransitionOutput{OrderID: orderID, Message: "Pedido cancelado com sucesso"}, nil
	case domain.StatusShipped:
		return TransitionOutput{}, fault.BusinessRulef("Pedido %s já foi enviado e não pode ser cancelado", orderID)
	}

	if err := s.updateStatus(ctx, orderID, domain.StatusCanceled); err != nil {
		return TransitionOutput{}, err
	}
	s.sink.Publish(ctx, domain.OrderCanceled{OrderID: orderID})

	slog.InfoContext(ctx, "order canceled", "order_id", orderID)
	return TransitionOutput{OrderID: orderID, Message: "Pedido cancelado com sucesso"}, nil
}

// MarkOrderAsPaid transitions PENDING -> PAID once the associated payment
// is APPROVED. Any other payment status leaves the order untouched.
func (s *Service) MarkOrderAsPaid(ctx context.Context, orderID string) (TransitionOutput, error) {
	payment, err := s.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return TransitionOutput{}, err
	}
	if payment.Status != domain.PaymentStatusApproved {
		return TransitionOutput{}, fault.BusinessRulef("Pagamento não foi aprovado para o pedido: %s", orderID)
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return TransitionOutput{}, err
	}

	switch order.Status {
	case domain.StatusPaid:
		return TransitionOutput{OrderID: orderID, Message: "Pedido pago com sucesso"}, nil
	case domain.StatusShipped, domain.StatusCanceled:
		return TransitionOutput{}, fault.BusinessRulef("Pedido %s não pode ser pago no status %s", orderID, order.Status)
	}

	if err := s.updateStatus(ctx, orderID, domain.StatusPaid); err != nil {
		return TransitionOutput{}, err
	}

	slog.InfoContext(ctx, "order marked as paid", "order_id", orderID)
	return TransitionOutput{OrderID: orderID, Message: "Pedido pago com sucesso"}, nil
}

// ShipOrder transitions PAID -> SHIPPED and publishes OrderShipped exactly
// once. Shipping an already shipped order succeeds without republishing.
func (s *Service) ShipOrder(ctx context.Context, orderID string) (TransitionOutput, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return TransitionOutput{}, err
	}

	switch order.Status {
	case domain.StatusShipped:
		return TransitionOutput{OrderID: orderID, Message: "Pedido enviado com sucesso"}, nil
	case domain.StatusPending:
		return TransitionOutput{}, fault.BusinessRulef("Pedido %s ainda não foi pago", orderID)
	case domain.StatusCanceled:
		return TransitionOutput{}, fault.BusinessRulef("Pedido %s está cancelado e não pode ser enviado", orderID)
	}

	if err := s.updateStatus(ctx, orderID, domain.StatusShipped); err != nil {
		return TransitionOutput{}, err
	}
	s.sink.Publish(ctx, domain.OrderShipped{OrderID: orderID})

	slog.InfoContext(ctx, "order shipped", "order_id", orderID)
	return TransitionOutput{OrderID: orderID, Message: "Pedido enviado com sucesso"}, nil
}

// validateStock fans out one stock lookup per item and fails fast on the
// first problem; a single unavailable product aborts the whole request
// before anything is persisted.
func (s *Service) validateStock(ctx context.Context, items []CreateOrderItem) ([]validatedItem, error) {
	validated := make([]validatedItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			snap, err := s.stock.GetStock(gctx, item.ProductID)
			if fault.KindOf(err) == fault.NotFound {
				return fault.BusinessRulef("Produto %s indisponível", item.ProductID)
			}
			if err != nil {
				return fmt.Errorf("stock lookup for %s: %w", item.ProductID, err)
			}
			if snap.Quantity < item.Quantity {
				return fault.BusinessRulef("Produto %s sem estoque suficiente (disponível: %d, solicitado: %d)",
					item.ProductID, snap.Quantity, item.Quantity)
			}
			validated[i] = validatedItem{snapshot: snap, quantity: item.Quantity}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return validated, nil
}

// decrementStock applies the per-item decrements. On failure it restores
// the decrements already applied, newest first, and cancels the order.
func (s *Service) decrementStock(ctx context.Context, order *domain.Order) error {
	for i, item := range order.Items {
		if _, err := s.stock.Decrement(ctx, item.ProductID, item.Quantity); err != nil {
			slog.ErrorContext(ctx, "stock decrement failed, compensating",
				"order_id", order.ID, "product_id", item.ProductID, "error", err)

			for j := i - 1; j >= 0; j-- {
				done := order.Items[j]
				if restoreErr := s.stock.Restore(ctx, done.ProductID, done.Quantity); restoreErr != nil {
					slog.ErrorContext(ctx, "CRITICAL: failed to restore stock during compensation",
						"order_id", order.ID, "product_id", done.ProductID, "error", restoreErr)
				}
			}
			if cancelErr := s.repo.UpdateStatus(ctx, order.ID, domain.StatusCanceled); cancelErr != nil {
				slog.ErrorContext(ctx, "CRITICAL: failed to cancel order after decrement failure",
					"order_id", order.ID, "error", cancelErr)
			}
			if fault.KindOf(err) != 0 {
				return err
			}
			return fmt.Errorf("decrement stock for %s: %w", item.ProductID, err)
		}
	}
	return nil
}

// replayOrder returns the order previously created under the same
// idempotency key, or nil when the key is unseen.
func (s *Service) replayOrder(ctx context.Context, idempKey string) (*domain.Order, error) {
	key := s.cache.GenerateKey("create_order", idempKey)
	orderID, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	}
	if orderID == "" {
		return nil, nil
	}
	return s.findOrder(ctx, orderID)
}

func (s *Service) findOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fault.NotFoundf("Pedido não encontrado com o id: %s", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *Service) updateStatus(ctx context.Context, orderID string, status domain.Status) error {
	err := s.repo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, domain.ErrNotFound) {
		return fault.NotFoundf("Pedido não encontrado com o id: %s", orderID)
	}
	if err != nil {
		return fmt.Errorf("update order %s to %s: %w", orderID, status, err)
	}
	return nil
}

func validateCreateOrder(in CreateOrderInput) error {
	var fields []string
	if in.ClientID == "" {
		fields = append(fields, "clientId é obrigatório")
	}
	if len(in.Items) == 0 {
		fields = append(fields, "products não pode ser vazio")
	}
	for _, item := range in.Items {
		if item.ProductID == "" {
			fields = append(fields, "productId é obrigatório")
		}
		if item.Quantity < 1 {
			fields = append(fields, fmt.Sprintf("quantity do produto %s deve ser no mínimo 1", item.ProductID))
		}
	}
	if len(fields) > 0 {
		return fault.ValidationFields("Um ou mais campos estão inválidos.", fields...)
	}
	return nil
}

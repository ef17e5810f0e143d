// Package app implements the payment module's use cases: processing a
// payment for an order and looking a payment up by order id.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/payment/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/cache"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
	"github.com/jcmexdev/modular-commerce/internal/pkg/metadata"
)

// UseCases is the primary port consumed by the HTTP layer and by the
// order module's PaymentLookup adapter.
type UseCases interface {
	Process(ctx context.Context, orderID, method string) (ProcessOutput, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
}

type ProcessOutput struct {
	ID      string
	Message string
}

// Repository is the driven port for payment persistence.
type Repository interface {
	Save(ctx context.Context, p *domain.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
}

// OrderLookup is the payment module's view of the order module.
type OrderLookup interface {
	// FindByID returns the order's total, or a NotFound fault.
	FindByID(ctx context.Context, orderID string) (OrderSummary, error)
}

// OrderSummary is the slice of order state the payment module needs.
type OrderSummary struct {
	ID          string
	TotalAmount decimal.Decimal
}

const idempotencyTTL = 24 * time.Hour

// Service implements UseCases.
type Service struct {
	repo   Repository
	orders OrderLookup
	sink   events.Sink
	cache  cache.Cache
	now    func() time.Time
}

var _ UseCases = (*Service)(nil)

func NewService(repo Repository, orders OrderLookup, sink events.Sink, c cache.Cache) *Service {
	return &Service{repo: repo, orders: orders, sink: sink, cache: c, now: time.Now}
}

// Process creates a payment record against an existing order. The gateway
// integration is out of scope here, so every processed payment comes back
// APPROVED with the order's total as its amount.
func (s *Service) Process(ctx context.Context, orderID, method string) (ProcessOutput, error) {
	if method == "" {
		return ProcessOutput{}, fault.Validationf("method é obrigatório")
	}

	idempKey := metadata.IdempotencyKey(ctx)
	if idempKey != "" {
		key := s.cache.GenerateKey("process_payment", idempKey)
		if paymentID, err := s.cache.Get(ctx, key); err != nil {
			return ProcessOutput{}, fmt.Errorf("idempotency lookup: %w", err)
		} else if paymentID != "" {
			slog.InfoContext(ctx, "payment replayed from idempotency key", "payment_id", paymentID)
			return ProcessOutput{ID: paymentID, Message: "Pagamento processado com sucesso"}, nil
		}
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return ProcessOutput{}, err
	}

	payment := &domain.Payment{
		ID:      uuid.NewString(),
		OrderID: order.ID,
		Status:  domain.StatusApproved,
		Method:  method,
		Amount:  order.TotalAmount,
		PaidAt:  s.now().UTC(),
	}
	if err := s.repo.Save(ctx, payment); err != nil {
		return ProcessOutput{}, fmt.Errorf("save payment: %w", err)
	}

	s.sink.Publish(ctx, domain.PaymentConfirmed{PaymentID: payment.ID, OrderID: payment.OrderID})

	if idempKey != "" {
		key := s.cache.GenerateKey("process_payment", idempKey)
		if err := s.cache.Set(ctx, key, payment.ID, idempotencyTTL); err != nil {
			slog.WarnContext(ctx, "failed to record idempotency key", "error", err)
		}
	}

	slog.InfoContext(ctx, "payment processed", "payment_id", payment.ID, "order_id", orderID, "method", method)
	return ProcessOutput{ID: payment.ID, Message: "Pagamento processado com sucesso"}, nil
}

func (s *Service) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	payment, err := s.repo.FindByOrderID(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fault.NotFoundf("Pagamento não encontrado para o orderId: %s", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("find payment for order %s: %w", orderID, err)
	}
	return payment, nil
}

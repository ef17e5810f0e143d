package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/modular-commerce/internal/invoice/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
)

// UseCases exposes the invoice module's operations.
type UseCases interface {
	Generate(ctx context.Context, orderID string) (GenerateResult, error)
}

type GenerateResult struct {
	Invoice domain.Invoice
	Message string
}

type Service struct {
	repo   Repository
	orders OrderLookup
	sink   events.Sink
	now    func() time.Time
}

var _ UseCases = (*Service)(nil)

func NewService(repo Repository, orders OrderLookup, sink events.Sink) *Service {
	return &Service{repo: repo, orders: orders, sink: sink, now: time.Now}
}

// Generate issues an invoice for an existing order. The lookup goes
// through the order module, so a missing order surfaces as its NotFound.
func (s *Service) Generate(ctx context.Context, orderID string) (GenerateResult, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return GenerateResult{}, err
	}

	generatedAt := s.now().UTC()
	invoice := domain.Invoice{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		InvoiceNumber: fmt.Sprintf("INV-%d", generatedAt.UnixMilli()),
		TotalAmount:   order.TotalAmount,
		GeneratedAt:   generatedAt,
	}
	if err := s.repo.Save(ctx, invoice); err != nil {
		return GenerateResult{}, err
	}

	slog.InfoContext(ctx, "invoice generated",
		"invoice_id", invoice.ID,
		"invoice_number", invoice.InvoiceNumber,
		"order_id", invoice.OrderID,
	)
	s.sink.Publish(ctx, domain.InvoiceGenerated{
		InvoiceID:   invoice.ID,
		OrderID:     invoice.OrderID,
		GeneratedAt: invoice.GeneratedAt,
		TotalAmount: invoice.TotalAmount,
	})

	return GenerateResult{Invoice: invoice, Message: "Fatura gerada com sucesso."}, nil
}

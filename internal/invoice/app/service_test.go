package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/modular-commerce/internal/invoice/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

type fakeRepo struct {
	saved []domain.Invoice
}

func (f *fakeRepo) Save(_ context.Context, invoice domain.Invoice) error {
	f.saved = append(f.saved, invoice)
	return nil
}

func (f *fakeRepo) FindByOrderID(_ context.Context, orderID string) (domain.Invoice, error) {
	for _, inv := range f.saved {
		if inv.OrderID == orderID {
			return inv, nil
		}
	}
	return domain.Invoice{}, domain.ErrNotFound
}

type fakeOrders struct {
	orders map[string]OrderSummary
}

func (f *fakeOrders) FindByID(_ context.Context, id string) (OrderSummary, error) {
	o, ok := f.orders[id]
	if !ok {
		return OrderSummary{}, fault.NotFoundf("Pedido não encontrado com o id: %s", id)
	}
	return o, nil
}

type recordingSink struct {
	published []events.Event
}

func (r *recordingSink) Publish(_ context.Context, e events.Event) {
	r.published = append(r.published, e)
}

func TestGenerateInvoice(t *testing.T) {
	repo := &fakeRepo{}
	orders := &fakeOrders{orders: map[string]OrderSummary{
		"o1": {ID: "o1", TotalAmount: decimal.RequireFromString("40.00")},
	}}
	sink := &recordingSink{}
	svc := NewService(repo, orders, sink)
	svc.now = func() time.Time { return time.UnixMilli(1684359876543).UTC() }

	out, err := svc.Generate(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Fatura gerada com sucesso.", out.Message)
	assert.Equal(t, "INV-1684359876543", out.Invoice.InvoiceNumber)
	assert.Equal(t, "o1", out.Invoice.OrderID)
	assert.True(t, out.Invoice.TotalAmount.Equal(decimal.RequireFromString("40.00")))

	require.Len(t, repo.saved, 1)
	require.Len(t, sink.published, 1)
	assert.Equal(t, "invoice.generated", sink.published[0].Name())
}

func TestGenerateInvoiceOrderMissing(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeOrders{orders: map[string]OrderSummary{}}, &recordingSink{})

	_, err := svc.Generate(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, fault.NotFound, fault.KindOf(err))
}

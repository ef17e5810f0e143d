package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
	"github.com/jcmexdev/modular-commerce/internal/product/domain"
)

type fakeRepo struct {
	products map[string]*domain.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[string]*domain.Product)}
}

func (f *fakeRepo) Save(_ context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) FindAllByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) AdjustStock(_ context.Context, id string, delta int) (int, error) {
	p, ok := f.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.StockQuantity-delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.StockQuantity -= delta
	return p.StockQuantity, nil
}

type recordingSink struct {
	published []events.Event
}

func (r *recordingSink) Publish(_ context.Context, e events.Event) {
	r.published = append(r.published, e)
}

func newService() (*Service, *fakeRepo, *recordingSink) {
	repo := newFakeRepo()
	sink := &recordingSink{}
	return NewService(repo, sink), repo, sink
}

func TestCreateProduct(t *testing.T) {
	svc, repo, _ := newService()

	out, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:          "Teclado",
		Description:   "Teclado mecânico",
		Price:         decimal.RequireFromString("199.90"),
		StockQuantity: 10,
		Category:      "perifericos",
	})
	require.NoError(t, err)
	assert.Equal(t, "Produto cadastrado com sucesso", out.Message)
	assert.NotEmpty(t, out.ID)
	assert.Contains(t, repo.products, out.ID)
}

func TestCreateProductValidatesFields(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Price: decimal.RequireFromString("-1"),
	})
	require.Error(t, err)
	assert.Equal(t, fault.Validation, fault.KindOf(err))
	assert.Len(t, fault.FieldsOf(err), 4)
}

func TestGetStockNotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetStock(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, fault.NotFound, fault.KindOf(err))
}

func TestChangeStock(t *testing.T) {
	t.Run("sale reduces stock and publishes", func(t *testing.T) {
		svc, repo, sink := newService()
		repo.products["p1"] = &domain.Product{ID: "p1", StockQuantity: 5}

		out, err := svc.ChangeStock(context.Background(), "p1", 2)
		require.NoError(t, err)
		assert.Equal(t, 3, out.NewStock)
		assert.Equal(t, "Estoque atualizado com sucesso", out.Message)
		require.Len(t, sink.published, 1)
		assert.Equal(t, "product.stock_reduced", sink.published[0].Name())
	})

	t.Run("restore adds stock without publishing", func(t *testing.T) {
		svc, repo, sink := newService()
		repo.products["p1"] = &domain.Product{ID: "p1", StockQuantity: 5}

		out, err := svc.ChangeStock(context.Background(), "p1", -2)
		require.NoError(t, err)
		assert.Equal(t, 7, out.NewStock)
		assert.Empty(t, sink.published)
	})

	t.Run("insufficient stock is a business rule violation", func(t *testing.T) {
		svc, repo, sink := newService()
		repo.products["p1"] = &domain.Product{ID: "p1", StockQuantity: 1}

		_, err := svc.ChangeStock(context.Background(), "p1", 2)
		require.Error(t, err)
		assert.Equal(t, fault.BusinessRule, fault.KindOf(err))
		assert.Equal(t, 1, repo.products["p1"].StockQuantity)
		assert.Empty(t, sink.published)
	})
}

func TestExistsByID(t *testing.T) {
	svc, repo, _ := newService()
	repo.products["p1"] = &domain.Product{ID: "p1"}

	exists, err := svc.ExistsByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/modular-commerce/internal/catalog/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

type fakeRepo struct {
	catalogs map[string]domain.Catalog
	added    map[string][]string
	removed  []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{catalogs: make(map[string]domain.Catalog), added: make(map[string][]string)}
}

func (f *fakeRepo) Save(_ context.Context, c domain.Catalog) error {
	f.catalogs[c.ID] = c
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (domain.Catalog, error) {
	c, ok := f.catalogs[id]
	if !ok {
		return domain.Catalog{}, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) AddProducts(_ context.Context, catalogID string, productIDs []string) error {
	f.added[catalogID] = append(f.added[catalogID], productIDs...)
	return nil
}

func (f *fakeRepo) RemoveProduct(_ context.Context, catalogID, productID string) error {
	f.removed = append(f.removed, catalogID+"/"+productID)
	return nil
}

type fakeChecker struct {
	existing map[string]bool
}

func (f *fakeChecker) ExistsByID(_ context.Context, id string) (bool, error) {
	return f.existing[id], nil
}

func newService() (*Service, *fakeRepo, *fakeChecker) {
	repo := newFakeRepo()
	checker := &fakeChecker{existing: make(map[string]bool)}
	return NewService(repo, checker), repo, checker
}

func TestCreateCatalog(t *testing.T) {
	svc, repo, checker := newService()
	checker.existing["p1"] = true
	checker.existing["p2"] = true

	out, err := svc.Create(context.Background(), CreateInput{
		Name:        "Promoções",
		ProductList: []string{"p1", "p2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Catálogo cadastrado com sucesso", out.Message)
	assert.Contains(t, repo.catalogs, out.Catalog.ID)
	assert.Equal(t, []string{"p1", "p2"}, out.Catalog.ProductIDs)
}

func TestCreateCatalogWithoutProducts(t *testing.T) {
	svc, repo, _ := newService()

	out, err := svc.Create(context.Background(), CreateInput{Name: "Vazio"})
	require.NoError(t, err)
	assert.Contains(t, repo.catalogs, out.Catalog.ID)
	assert.Empty(t, out.Catalog.ProductIDs)
}

func TestCreateCatalogUnknownProduct(t *testing.T) {
	svc, repo, checker := newService()
	checker.existing["p1"] = true

	_, err := svc.Create(context.Background(), CreateInput{
		Name:        "Promoções",
		ProductList: []string{"p1", "ghost"},
	})
	require.Error(t, err)
	assert.Equal(t, fault.NotFound, fault.KindOf(err))
	assert.Equal(t, "Produto não encontrado: ghost", err.Error())
	assert.Empty(t, repo.catalogs, "nothing persists when a product is missing")
}

func TestCreateCatalogRequiresName(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), CreateInput{})
	require.Error(t, err)
	assert.Equal(t, fault.Validation, fault.KindOf(err))
}

func TestAddProducts(t *testing.T) {
	svc, repo, checker := newService()
	repo.catalogs["cat1"] = domain.Catalog{ID: "cat1", Name: "Promoções"}
	checker.existing["p1"] = true

	out, err := svc.AddProducts(context.Background(), "cat1", []string{"p1"})
	require.NoError(t, err)
	assert.Equal(t, "Produtos adicionados com sucesso", out.Message)
	assert.Equal(t, []string{"p1"}, repo.added["cat1"])
}

func TestAddProductsUnknownCatalog(t *testing.T) {
	svc, _, checker := newService()
	checker.existing["p1"] = true

	_, err := svc.AddProducts(context.Background(), "ghost", []string{"p1"})
	assert.Equal(t, fault.NotFound, fault.KindOf(err))
}

func TestAddProductsRequiresIDs(t *testing.T) {
	svc, repo, _ := newService()
	repo.catalogs["cat1"] = domain.Catalog{ID: "cat1"}

	_, err := svc.AddProducts(context.Background(), "cat1", nil)
	assert.Equal(t, fault.Validation, fault.KindOf(err))
}

func TestRemoveProduct(t *testing.T) {
	svc, repo, _ := newService()
	repo.catalogs["cat1"] = domain.Catalog{ID: "cat1"}

	out, err := svc.RemoveProduct(context.Background(), "cat1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Produto removido com sucesso", out.Message)
	assert.Equal(t, []string{"cat1/p1"}, repo.removed)
}

package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
	"github.com/jcmexdev/modular-commerce/internal/product/domain"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := New(db)
	require.NoError(t, err)
	return repo
}

func seedProduct(t *testing.T, repo *Repository, stock int) *domain.Product {
	t.Helper()
	p := &domain.Product{
		ID:            uuid.NewString(),
		Name:          "Teclado",
		Description:   "Teclado mecânico",
		Price:         decimal.RequireFromString("199.90"),
		StockQuantity: stock,
		Category:      "perifericos",
	}
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestSaveAndFindByID(t *testing.T) {
	repo := newTestRepo(t)
	p := seedProduct(t, repo, 10)

	found, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, found.Name)
	assert.True(t, p.Price.Equal(found.Price))
	assert.Equal(t, 10, found.StockQuantity)
}

func TestFindByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindAllByCategory(t *testing.T) {
	repo := newTestRepo(t)
	seedProduct(t, repo, 1)
	seedProduct(t, repo, 2)

	products, err := repo.FindAllByCategory(context.Background(), "perifericos")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = repo.FindAllByCategory(context.Background(), "outra")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAdjustStock(t *testing.T) {
	repo := newTestRepo(t)
	p := seedProduct(t, repo, 5)

	newStock, err := repo.AdjustStock(context.Background(), p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, newStock)

	// Restoring uses a negative delta.
	newStock, err = repo.AdjustStock(context.Background(), p.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, newStock)
}

func TestAdjustStockNeverGoesNegative(t *testing.T) {
	repo := newTestRepo(t)
	p := seedProduct(t, repo, 2)

	_, err := repo.AdjustStock(context.Background(), p.ID, 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	found, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.StockQuantity, "failed decrement must not change stock")
}

func TestAdjustStockMissingProduct(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AdjustStock(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Concurrent sales of the last units must never oversell: with 5 units
// and 10 buyers of one unit each, exactly 5 succeed.
func TestAdjustStockConcurrent(t *testing.T) {
	repo := newTestRepo(t)
	p := seedProduct(t, repo, 5)

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AdjustStock(context.Background(), p.ID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insufficient++
		}
	}
	assert.Equal(t, 5, ok)
	assert.Equal(t, 5, insufficient)

	found, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.StockQuantity)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/modular-commerce/internal/invoice/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
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

func TestSaveAndFindByOrderID(t *testing.T) {
	repo := newTestRepo(t)
	invoice := domain.Invoice{
		ID:            uuid.NewString(),
		OrderID:       "o1",
		InvoiceNumber: "INV-1684359876543",
		TotalAmount:   decimal.RequireFromString("40.00"),
		GeneratedAt:   time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, repo.Save(context.Background(), invoice))

	found, err := repo.FindByOrderID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, invoice.InvoiceNumber, found.InvoiceNumber)
	assert.True(t, invoice.TotalAmount.Equal(found.TotalAmount))
}

func TestFindByOrderIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByOrderID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

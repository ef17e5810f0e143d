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

	"github.com/jcmexdev/modular-commerce/internal/order/domain"
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

func sampleOrder() *domain.Order {
	id := uuid.NewString()
	return &domain.Order{
		ID:          id,
		ClientID:    "c1",
		TotalAmount: decimal.RequireFromString("40.00"),
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Items: []domain.OrderItem{
			{
				OrderID:     id,
				ProductID:   "p1",
				ProductName: "Teclado",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("10.00"),
				TotalPrice:  decimal.RequireFromString("20.00"),
			},
			{
				OrderID:     id,
				ProductID:   "p2",
				ProductName: "Mouse",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("20.00"),
				TotalPrice:  decimal.RequireFromString("20.00"),
			},
		},
	}
}

func TestCreateWithItemsAndFindByID(t *testing.T) {
	repo := newTestRepo(t)
	order := sampleOrder()

	require.NoError(t, repo.CreateWithItems(context.Background(), order))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ClientID, found.ClientID)
	assert.Equal(t, domain.StatusPending, found.Status)
	assert.True(t, order.TotalAmount.Equal(found.TotalAmount))
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Teclado", found.Items[0].ProductName)
	assert.True(t, found.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestFindByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newTestRepo(t)
	order := sampleOrder()
	require.NoError(t, repo.CreateWithItems(context.Background(), order))

	require.NoError(t, repo.UpdateStatus(context.Background(), order.ID, domain.StatusPaid))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, found.Status)
}

func TestUpdateStatusMissing(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

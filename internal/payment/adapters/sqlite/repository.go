// Package sqlite provides the SQLite-backed payment repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/payment/app"
	"github.com/jcmexdev/modular-commerce/internal/payment/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

const schema = `
CREATE TABLE IF NOT EXISTS payments (
    id        TEXT PRIMARY KEY,
    order_id  TEXT NOT NULL,
    status    TEXT NOT NULL,
    method    TEXT NOT NULL,
    amount    TEXT NOT NULL,
    paid_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payments_order_id ON payments(order_id);
`

// Repository is the SQLite implementation of app.Repository.
type Repository struct {
	db *sql.DB
}

var _ app.Repository = (*Repository)(nil)

// New applies the schema and returns the repository.
func New(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("payments: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Save(ctx context.Context, p *domain.Payment) error {
	const q = `
		INSERT INTO payments (id, order_id, status, method, amount, paid_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.OrderID, string(p.Status), p.Method, p.Amount.String(), sqlitedb.FormatTime(p.PaidAt),
	)
	if err != nil {
		return fmt.Errorf("payments: save %q: %w", p.ID, err)
	}
	return nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	const q = `
		SELECT id, order_id, status, method, amount, paid_at
		FROM   payments
		WHERE  order_id = ?
		ORDER  BY paid_at DESC
		LIMIT  1`

	var p domain.Payment
	var status, amount, paidAt string
	err := r.db.QueryRowContext(ctx, q, orderID).Scan(&p.ID, &p.OrderID, &status, &p.Method, &amount, &paidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("payments: find for order %q: %w", orderID, err)
	}

	p.Status = domain.Status(status)
	if p.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("payments: parse amount of %q: %w", p.ID, err)
	}
	if p.PaidAt, err = sqlitedb.ParseTime(paidAt); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	return &p, nil
}

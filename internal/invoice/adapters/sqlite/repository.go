// Package sqlite persists invoices.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/invoice/app"
	"github.com/jcmexdev/modular-commerce/internal/invoice/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

const schema = `
CREATE TABLE IF NOT EXISTS invoices (
	id             TEXT PRIMARY KEY,
	order_id       TEXT NOT NULL,
	invoice_number TEXT NOT NULL UNIQUE,
	total_amount   TEXT NOT NULL,
	generated_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_invoices_order ON invoices(order_id);
`

// Repository is the SQLite implementation of app.Repository.
type Repository struct {
	db *sql.DB
}

var _ app.Repository = (*Repository)(nil)

// New applies the schema and returns the repository.
func New(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating invoices schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Save(ctx context.Context, invoice domain.Invoice) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (id, order_id, invoice_number, total_amount, generated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		invoice.ID, invoice.OrderID, invoice.InvoiceNumber,
		invoice.TotalAmount.String(), sqlitedb.FormatTime(invoice.GeneratedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, order_id, invoice_number, total_amount, generated_at
		 FROM invoices WHERE order_id = ? ORDER BY generated_at DESC LIMIT 1`, orderID)

	var invoice domain.Invoice
	var total, generatedAt string
	err := row.Scan(&invoice.ID, &invoice.OrderID, &invoice.InvoiceNumber, &total, &generatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Invoice{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("scanning invoice: %w", err)
	}
	invoice.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("parsing invoice total: %w", err)
	}
	invoice.GeneratedAt, err = sqlitedb.ParseTime(generatedAt)
	if err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

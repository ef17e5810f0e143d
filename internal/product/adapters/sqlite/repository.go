// Package sqlite provides the SQLite-backed product repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/product/app"
	"github.com/jcmexdev/modular-commerce/internal/product/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    description     TEXT NOT NULL,
    price           TEXT NOT NULL,
    stock_quantity  INTEGER NOT NULL CHECK (stock_quantity >= 0),
    category        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

// Repository is the SQLite implementation of app.Repository.
type Repository struct {
	db *sql.DB
}

var _ app.Repository = (*Repository)(nil)

// New applies the schema and returns the repository.
func New(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("products: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Save(ctx context.Context, p *domain.Product) error {
	const q = `
		INSERT INTO products (id, name, description, price, stock_quantity, category)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Name, p.Description, p.Price.String(), p.StockQuantity, p.Category,
	)
	if err != nil {
		return fmt.Errorf("products: save %q: %w", p.ID, err)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
		SELECT id, name, description, price, stock_quantity, category
		FROM   products
		WHERE  id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("products: find %q: %w", id, err)
	}
	return p, nil
}

func (r *Repository) FindAllByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `
		SELECT id, name, description, price, stock_quantity, category
		FROM   products
		WHERE  category = ?
		ORDER  BY name`

	rows, err := r.db.QueryContext(ctx, q, category)
	if err != nil {
		return nil, fmt.Errorf("products: list category %q: %w", category, err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("products: scan category %q: %w", category, err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// AdjustStock runs the conditional decrement in one statement: the WHERE
// clause rejects any update that would leave the stock negative, closing
// the check-then-act window between concurrent orders.
func (r *Repository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	const q = `
		UPDATE products
		SET    stock_quantity = stock_quantity - ?
		WHERE  id = ? AND stock_quantity - ? >= 0`

	res, err := r.db.ExecContext(ctx, q, delta, id, delta)
	if err != nil {
		return 0, fmt.Errorf("products: adjust stock of %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("products: adjust stock of %q: %w", id, err)
	}
	if affected == 0 {
		// Distinguish a missing product from an insufficient balance.
		if _, err := r.FindByID(ctx, id); err != nil {
			return 0, err
		}
		return 0, domain.ErrInsufficientStock
	}

	var newStock int
	if err := r.db.QueryRowContext(ctx, `SELECT stock_quantity FROM products WHERE id = ?`, id).Scan(&newStock); err != nil {
		return 0, fmt.Errorf("products: read stock of %q: %w", id, err)
	}
	return newStock, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var price string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.StockQuantity, &p.Category); err != nil {
		return nil, err
	}
	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	return &p, nil
}

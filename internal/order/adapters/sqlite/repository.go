// Package sqlite provides the SQLite-backed order repository. Order and
// items are written in one transaction so a crash can never leave an
// order without its lines.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/order/app"
	"github.com/jcmexdev/modular-commerce/internal/order/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id            TEXT PRIMARY KEY,
    client_id     TEXT NOT NULL,
    total_amount  TEXT NOT NULL,
    status        TEXT NOT NULL,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    order_id      TEXT NOT NULL REFERENCES orders(id),
    product_id    TEXT NOT NULL,
    product_name  TEXT NOT NULL,
    quantity      INTEGER NOT NULL CHECK (quantity > 0),
    unit_price    TEXT NOT NULL,
    total_price   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
`

// Repository is the SQLite implementation of app.Repository.
type Repository struct {
	db *sql.DB
}

var _ app.Repository = (*Repository)(nil)

// New applies the schema and returns the repository.
func New(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("orders: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) CreateWithItems(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("orders: begin tx: %w", err)
	}
	defer tx.Rollback()

	const insertOrder = `
		INSERT INTO orders (id, client_id, total_amount, status, created_at)
		VALUES (?, ?, ?, ?, ?)`

	if _, err := tx.ExecContext(ctx, insertOrder,
		o.ID, o.ClientID, o.TotalAmount.String(), string(o.Status), sqlitedb.FormatTime(o.CreatedAt),
	); err != nil {
		return fmt.Errorf("orders: insert %q: %w", o.ID, err)
	}

	const insertItem = `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES (?, ?, ?, ?, ?, ?)`

	for _, item := range o.Items {
		if _, err := tx.ExecContext(ctx, insertItem,
			item.OrderID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice.String(), item.TotalPrice.String(),
		); err != nil {
			return fmt.Errorf("orders: insert item %q of %q: %w", item.ProductID, o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("orders: commit %q: %w", o.ID, err)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
		SELECT id, client_id, total_amount, status, created_at
		FROM   orders
		WHERE  id = ?`

	var o domain.Order
	var total, status, createdAt string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&o.ID, &o.ClientID, &total, &status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("orders: find %q: %w", id, err)
	}

	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("orders: parse total of %q: %w", id, err)
	}
	o.Status = domain.Status(status)
	if o.CreatedAt, err = sqlitedb.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}

	if o.Items, err = r.findItems(ctx, id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("orders: update status of %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("orders: update status of %q: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) findItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
		SELECT order_id, product_id, product_name, quantity, unit_price, total_price
		FROM   order_items
		WHERE  order_id = ?`

	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, fmt.Errorf("orders: items of %q: %w", orderID, err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var unitPrice, totalPrice string
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &unitPrice, &totalPrice); err != nil {
			return nil, fmt.Errorf("orders: scan item of %q: %w", orderID, err)
		}
		if item.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return nil, fmt.Errorf("orders: parse unit price of %q: %w", orderID, err)
		}
		if item.TotalPrice, err = decimal.NewFromString(totalPrice); err != nil {
			return nil, fmt.Errorf("orders: parse total price of %q: %w", orderID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

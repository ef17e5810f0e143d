// Package sqlite persists catalogs and their product associations.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jcmexdev/modular-commerce/internal/catalog/app"
	"github.com/jcmexdev/modular-commerce/internal/catalog/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalogs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS catalog_products (
	catalog_id TEXT NOT NULL REFERENCES catalogs(id) ON DELETE CASCADE,
	product_id TEXT NOT NULL,
	PRIMARY KEY (catalog_id, product_id)
);
`

// Repository is the SQLite implementation of app.Repository.
type Repository struct {
	db *sql.DB
}

var _ app.Repository = (*Repository)(nil)

// New applies the schema and returns the repository.
func New(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating catalogs schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Save(ctx context.Context, catalog domain.Catalog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO catalogs (id, name, created_at) VALUES (?, ?, ?)`,
		catalog.ID, catalog.Name, sqlitedb.FormatTime(catalog.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting catalog: %w", err)
	}
	for _, productID := range catalog.ProductIDs {
		if err := insertAssociation(ctx, tx, catalog.ID, productID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repository) FindByID(ctx context.Context, id string) (domain.Catalog, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM catalogs WHERE id = ?`, id)

	var catalog domain.Catalog
	var createdAt string
	err := row.Scan(&catalog.ID, &catalog.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Catalog{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("scanning catalog: %w", err)
	}
	catalog.CreatedAt, err = sqlitedb.ParseTime(createdAt)
	if err != nil {
		return domain.Catalog{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM catalog_products WHERE catalog_id = ?`, id)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("querying catalog products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return domain.Catalog{}, fmt.Errorf("scanning catalog product: %w", err)
		}
		catalog.ProductIDs = append(catalog.ProductIDs, productID)
	}
	return catalog, rows.Err()
}

func (r *Repository) AddProducts(ctx context.Context, catalogID string, productIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, productID := range productIDs {
		if err := insertAssociation(ctx, tx, catalogID, productID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repository) RemoveProduct(ctx context.Context, catalogID, productID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM catalog_products WHERE catalog_id = ? AND product_id = ?`,
		catalogID, productID,
	)
	if err != nil {
		return fmt.Errorf("removing catalog product: %w", err)
	}
	return nil
}

// insertAssociation upserts so re-adding an already-associated product is
// a no-op instead of a constraint violation.
func insertAssociation(ctx context.Context, tx *sql.Tx, catalogID, productID string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_products (catalog_id, product_id) VALUES (?, ?)
		 ON CONFLICT (catalog_id, product_id) DO NOTHING`,
		catalogID, productID,
	)
	if err != nil {
		return fmt.Errorf("inserting catalog product: %w", err)
	}
	return nil
}

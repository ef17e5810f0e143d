// Package sqlite persists clients and their addresses.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jcmexdev/modular-commerce/internal/client/app"
	"github.com/jcmexdev/modular-commerce/internal/client/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/sqlitedb"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	phone      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS client_addresses (
	id         TEXT PRIMARY KEY,
	client_id  TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	street     TEXT NOT NULL,
	number     TEXT NOT NULL DEFAULT '',
	city       TEXT NOT NULL,
	state      TEXT NOT NULL DEFAULT '',
	zip_code   TEXT NOT NULL,
	complement TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_client_addresses_client ON client_addresses(client_id);
`

// Repository is the SQLite implementation of app.Repository.
type Repository struct {
	db *sql.DB
}

var _ app.Repository = (*Repository)(nil)

// New applies the schema and returns the repository.
func New(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating clients schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Save(ctx context.Context, client domain.Client) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO clients (id, name, email, phone, created_at) VALUES (?, ?, ?, ?, ?)`,
		client.ID, client.Name, client.Email, client.Phone, sqlitedb.FormatTime(client.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}

	for _, a := range client.Addresses {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO client_addresses (id, client_id, street, number, city, state, zip_code, complement)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.ClientID, a.Street, a.Number, a.City, a.State, a.ZipCode, a.Complement,
		)
		if err != nil {
			return fmt.Errorf("inserting address: %w", err)
		}
	}

	return tx.Commit()
}

func (r *Repository) FindByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, created_at FROM clients WHERE id = ?`, id)

	var client domain.Client
	var createdAt string
	err := row.Scan(&client.ID, &client.Name, &client.Email, &client.Phone, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Client{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Client{}, fmt.Errorf("scanning client: %w", err)
	}
	client.CreatedAt, err = sqlitedb.ParseTime(createdAt)
	if err != nil {
		return domain.Client{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, street, number, city, state, zip_code, complement
		 FROM client_addresses WHERE client_id = ?`, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("querying addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.ClientID, &a.Street, &a.Number, &a.City, &a.State, &a.ZipCode, &a.Complement); err != nil {
			return domain.Client{}, fmt.Errorf("scanning address: %w", err)
		}
		client.Addresses = append(client.Addresses, a)
	}
	return client, rows.Err()
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM clients WHERE email = ?`, email).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking email: %w", err)
	}
	return n > 0, nil
}

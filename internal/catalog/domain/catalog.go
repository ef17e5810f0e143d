package domain

import (
	"errors"
	"time"
)

// Catalog groups products for merchandising purposes.
type Catalog struct {
	ID         string
	Name       string
	ProductIDs []string
	CreatedAt  time.Time
}

var ErrNotFound = errors.New("catálogo não encontrado")

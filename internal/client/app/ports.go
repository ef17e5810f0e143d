package app

import (
	"context"

	"github.com/jcmexdev/modular-commerce/internal/client/domain"
)

// Repository persists clients and their addresses.
type Repository interface {
	Save(ctx context.Context, client domain.Client) error
	FindByID(ctx context.Context, id string) (domain.Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

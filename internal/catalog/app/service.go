package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/modular-commerce/internal/catalog/domain"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

// UseCases exposes the catalog module's operations.
type UseCases interface {
	Create(ctx context.Context, in CreateInput) (CreateResult, error)
	AddProducts(ctx context.Context, catalogID string, productIDs []string) (MutationResult, error)
	RemoveProduct(ctx context.Context, catalogID, productID string) (MutationResult, error)
	GetByID(ctx context.Context, id string) (domain.Catalog, error)
}

type CreateInput struct {
	Name        string
	ProductList []string
}

type CreateResult struct {
	Catalog domain.Catalog
	Message string
}

type MutationResult struct {
	CatalogID  string
	ProductIDs []string
	Message    string
}

type Service struct {
	repo     Repository
	products ProductChecker
	now      func() time.Time
}

var _ UseCases = (*Service)(nil)

func NewService(repo Repository, products ProductChecker) *Service {
	return &Service{repo: repo, products: products, now: time.Now}
}

// Create validates every referenced product before persisting, so a
// missing product never leaves a half-built catalog behind.
func (s *Service) Create(ctx context.Context, in CreateInput) (CreateResult, error) {
	if strings.TrimSpace(in.Name) == "" {
		return CreateResult{}, fault.ValidationFields("Dados do catálogo inválidos", "name: não pode ser vazio")
	}

	if err := s.checkProducts(ctx, in.ProductList); err != nil {
		return CreateResult{}, err
	}

	catalog := domain.Catalog{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		ProductIDs: in.ProductList,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Save(ctx, catalog); err != nil {
		return CreateResult{}, err
	}

	slog.InfoContext(ctx, "catalog created", "catalog_id", catalog.ID, "products", len(catalog.ProductIDs))
	return CreateResult{Catalog: catalog, Message: "Catálogo cadastrado com sucesso"}, nil
}

func (s *Service) AddProducts(ctx context.Context, catalogID string, productIDs []string) (MutationResult, error) {
	if len(productIDs) == 0 {
		return MutationResult{}, fault.ValidationFields("Dados do catálogo inválidos", "productsId: não pode ser vazio")
	}
	if _, err := s.findCatalog(ctx, catalogID); err != nil {
		return MutationResult{}, err
	}
	if err := s.checkProducts(ctx, productIDs); err != nil {
		return MutationResult{}, err
	}
	if err := s.repo.AddProducts(ctx, catalogID, productIDs); err != nil {
		return MutationResult{}, err
	}
	return MutationResult{
		CatalogID:  catalogID,
		ProductIDs: productIDs,
		Message:    "Produtos adicionados com sucesso",
	}, nil
}

func (s *Service) RemoveProduct(ctx context.Context, catalogID, productID string) (MutationResult, error) {
	if _, err := s.findCatalog(ctx, catalogID); err != nil {
		return MutationResult{}, err
	}
	if err := s.repo.RemoveProduct(ctx, catalogID, productID); err != nil {
		return MutationResult{}, err
	}
	return MutationResult{
		CatalogID:  catalogID,
		ProductIDs: []string{productID},
		Message:    "Produto removido com sucesso",
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Catalog, error) {
	return s.findCatalog(ctx, id)
}

func (s *Service) checkProducts(ctx context.Context, productIDs []string) error {
	for _, id := range productIDs {
		exists, err := s.products.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fault.NotFoundf("Produto não encontrado: %s", id)
		}
	}
	return nil
}

func (s *Service) findCatalog(ctx context.Context, id string) (domain.Catalog, error) {
	catalog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Catalog{}, fault.NotFoundf("Catálogo não encontrado com ID: %s", id)
		}
		return domain.Catalog{}, err
	}
	return catalog, nil
}

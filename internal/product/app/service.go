// Package app implements the product module's use cases: registering
// products, listing them by category, and the stock operations the order
// module drives through its StockChecker port.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/modular-commerce/internal/pkg/events"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
	"github.com/jcmexdev/modular-commerce/internal/product/domain"
)

// UseCases is the primary port the HTTP layer and sibling modules consume.
type UseCases interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (CreateProductOutput, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetStock(ctx context.Context, productID string) (StockInfo, error)
	ChangeStock(ctx context.Context, productID string, delta int) (ChangeStockOutput, error)
	ExistsByID(ctx context.Context, productID string) (bool, error)
}

type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Category      string
}

type CreateProductOutput struct {
	ID      string
	Message string
}

// StockInfo is the read-only snapshot handed to callers of GetStock.
type StockInfo struct {
	ProductID   string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

type ChangeStockOutput struct {
	ProductID string
	NewStock  int
	Message   string
}

// Service implements UseCases.
type Service struct {
	repo Repository
	sink events.Sink
}

var _ UseCases = (*Service)(nil)

func NewService(repo Repository, sink events.Sink) *Service {
	return &Service{repo: repo, sink: sink}
}

func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (CreateProductOutput, error) {
	var fields []string
	if in.Name == "" {
		fields = append(fields, "name é obrigatório")
	}
	if in.Description == "" {
		fields = append(fields, "description é obrigatório")
	}
	if in.Category == "" {
		fields = append(fields, "category é obrigatório")
	}
	if !in.Price.IsPositive() {
		fields = append(fields, "price deve ser maior que zero")
	}
	if in.StockQuantity < 0 {
		fields = append(fields, "stockQuantity não pode ser negativo")
	}
	if len(fields) > 0 {
		return CreateProductOutput{}, fault.ValidationFields("Um ou mais campos estão inválidos.", fields...)
	}

	p := &domain.Product{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		Category:      in.Category,
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return CreateProductOutput{}, fmt.Errorf("save product: %w", err)
	}

	slog.InfoContext(ctx, "product created", "product_id", p.ID, "category", p.Category)
	return CreateProductOutput{ID: p.ID, Message: "Produto cadastrado com sucesso"}, nil
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return nil, fault.Validationf("category é obrigatório")
	}
	products, err := s.repo.FindAllByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category %q: %w", category, err)
	}
	return products, nil
}

func (s *Service) GetStock(ctx context.Context, productID string) (StockInfo, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return StockInfo{}, fault.NotFoundf("Produto não encontrado com ID: %s", productID)
	}
	if err != nil {
		return StockInfo{}, fmt.Errorf("get stock for %s: %w", productID, err)
	}
	return StockInfo{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.StockQuantity,
	}, nil
}

// ChangeStock subtracts delta from the product's stock. A positive delta
// is a sale; a negative delta restores stock (compensation path). The
// decrement is a single conditional UPDATE, so concurrent orders on the
// same product can never drive the quantity negative.
func (s *Service) ChangeStock(ctx context.Context, productID string, delta int) (ChangeStockOutput, error) {
	newStock, err := s.repo.AdjustStock(ctx, productID, delta)
	if errors.Is(err, domain.ErrNotFound) {
		return ChangeStockOutput{}, fault.NotFoundf("Produto não encontrado com ID: %s", productID)
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return ChangeStockOutput{}, fault.BusinessRulef("Estoque insuficiente para o produto %s", productID)
	}
	if err != nil {
		return ChangeStockOutput{}, fmt.Errorf("adjust stock for %s: %w", productID, err)
	}

	if delta > 0 {
		s.sink.Publish(ctx, domain.StockReduced{ProductID: productID, Quantity: delta})
	}

	slog.InfoContext(ctx, "stock adjusted", "product_id", productID, "delta", delta, "new_stock", newStock)
	return ChangeStockOutput{
		ProductID: productID,
		NewStock:  newStock,
		Message:   "Estoque atualizado com sucesso",
	}, nil
}

func (s *Service) ExistsByID(ctx context.Context, productID string) (bool, error) {
	_, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check product %s: %w", productID, err)
	}
	return true, nil
}

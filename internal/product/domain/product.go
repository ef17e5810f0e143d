package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item with its current stock level.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Category      string
}

// StockReduced is published after a decrement is applied.
type StockReduced struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (StockReduced) Name() string { return "product.stock_reduced" }

package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a billing document issued for a paid order.
type Invoice struct {
	ID            string
	OrderID       string
	InvoiceNumber string
	TotalAmount   decimal.Decimal
	GeneratedAt   time.Time
}

var ErrNotFound = errors.New("fatura não encontrada")

// InvoiceGenerated is published after an invoice is persisted.
type InvoiceGenerated struct {
	InvoiceID   string          `json:"invoiceId"`
	OrderID     string          `json:"orderId"`
	GeneratedAt time.Time       `json:"generatedAt"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (InvoiceGenerated) Name() string { return "invoice.generated" }

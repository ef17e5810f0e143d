package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payment lifecycle state.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusApproved   Status = "APPROVED"
	StatusDeclined   Status = "DECLINED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// Payment records a payment against an order. Amount always mirrors the
// order's total at processing time.
type Payment struct {
	ID      string
	OrderID string
	Status  Status
	Method  string
	Amount  decimal.Decimal
	PaidAt  time.Time
}

// ErrNotFound is returned by repositories when no payment matches.
var ErrNotFound = errors.New("pagamento não encontrado")

// PaymentConfirmed is published after a payment is persisted.
type PaymentConfirmed struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
}

func (PaymentConfirmed) Name() string { return "payment.confirmed" }

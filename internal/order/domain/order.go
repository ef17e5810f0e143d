// Package domain holds the order module's entities, status machine and
// domain events.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusShipped  Status = "SHIPPED"
	StatusCanceled Status = "CANCELED"
)

// Order is a customer's purchase request. TotalAmount always equals the
// sum of the items' TotalPrice at creation time; items are never mutated
// afterwards.
type Order struct {
	ID          string
	ClientID    string
	TotalAmount decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	Items       []OrderItem
}

// OrderItem is one product line. ProductName and UnitPrice are snapshots
// taken at order time, so later product edits never rewrite history.
type OrderItem struct {
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// StockSnapshot is the read-only view of a product's stock consulted at
// order-creation time via the StockChecker port.
type StockSnapshot struct {
	ProductID   string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// PaymentRecord is the read-only view of a payment obtained via the
// PaymentLookup port.
type PaymentRecord struct {
	ID      string
	OrderID string
	Status  string
	Method  string
	Amount  decimal.Decimal
	PaidAt  time.Time
}

// PaymentStatusApproved is the only payment status that allows marking an
// order as paid.
const PaymentStatusApproved = "APPROVED"

// ErrNotFound is returned by repositories when no order matches.
var ErrNotFound = errors.New("pedido não encontrado")

// OrderCreated is published after the order and its items are committed.
type OrderCreated struct {
	ClientID    string          `json:"client_id"`
	OrderID     string          `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func (OrderCreated) Name() string { return "order.created" }

// OrderShipped is published exactly once, on the PAID -> SHIPPED
// transition.
type OrderShipped struct {
	OrderID string `json:"order_id"`
}

func (OrderShipped) Name() string { return "order.shipped" }

// OrderCanceled is published on an actual transition to CANCELED;
// re-canceling an already canceled order does not republish.
type OrderCanceled struct {
	OrderID string `json:"order_id"`
}

func (OrderCanceled) Name() string { return "order.canceled" }

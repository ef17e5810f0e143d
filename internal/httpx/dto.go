package httpx

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	ClientID string                `json:"clientId"`
	Products []OrderProductRequest `json:"products"`
}

type OrderProductRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	ClientID    string              `json:"clientId"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"createdAt"`
	Products    []OrderItemResponse `json:"products,omitempty"`
}

type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type TransitionResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
}

type IDMessageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
}

type CreateCatalogRequest struct {
	Name        string   `json:"name"`
	ProductList []string `json:"productList"`
}

type CatalogMutationResponse struct {
	CatalogID  string   `json:"catalogId"`
	ProductIDs []string `json:"productIds"`
	Message    string   `json:"message"`
}

type RegisterClientRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Rua    string `json:"rua"`
	Numero string `json:"numero"`
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	CEP    string `json:"cep"`
}

type RegisterClientResponse struct {
	ClientID string `json:"clientId"`
	Message  string `json:"message"`
}

type InvoiceResponse struct {
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
	GeneratedAt   string `json:"generatedAt"`
	Message       string `json:"message"`
}

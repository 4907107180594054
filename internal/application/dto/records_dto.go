package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Sale ──────────────────────────────────────────────────────────────────────

type SaleLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CreateSaleRequest struct {
	BarTableID      int64             `json:"bar_table_id"`
	EmployeeID      int64             `json:"employee_id"`
	PaymentMethodID int64             `json:"payment_method_id"`
	Lines           []SaleLineRequest `json:"lines"`
}

type SaleLineResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID              int64              `json:"id"`
	BarTableID      int64              `json:"bar_table_id"`
	EmployeeID      int64              `json:"employee_id"`
	PaymentMethodID int64              `json:"payment_method_id"`
	Total           decimal.Decimal    `json:"total"`
	Lines           []SaleLineResponse `json:"lines"`
	CreatedAt       time.Time          `json:"created_at"`
}

type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── StockEntry ────────────────────────────────────────────────────────────────

type CreateStockEntryRequest struct {
	ProductID  int64           `json:"product_id"`
	ProviderID *int64          `json:"provider_id"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
}

type StockEntryResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	ProviderID *int64          `json:"provider_id"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	CreatedAt  time.Time       `json:"created_at"`
}

type StockEntryListResponse struct {
	Items []StockEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ── Transaction ───────────────────────────────────────────────────────────────

type CreateTransactionRequest struct {
	AccountID int64           `json:"account_id"`
	Kind      string          `json:"kind"` // in, out
	Amount    decimal.Decimal `json:"amount"`
	Concept   string          `json:"concept"`
}

type TransactionResponse struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Concept   string          `json:"concept"`
	SaleID    *int64          `json:"sale_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Code       int64           `json:"code"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	BrandID    *int64          `json:"brand_id"`
	CategoryID *int64          `json:"category_id"`
	ProviderID *int64          `json:"provider_id"`
}

// UpdateProductRequest no permite modificar Stock: se maneja vía ventas y
// entradas de mercancía.
type UpdateProductRequest struct {
	Code       *int64           `json:"code"`
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	Cost       *decimal.Decimal `json:"cost"`
	BrandID    *int64           `json:"brand_id"`
	CategoryID *int64           `json:"category_id"`
	ProviderID *int64           `json:"provider_id"`
}

type ProductResponse struct {
	ID         int64           `json:"id"`
	Code       int64           `json:"code"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Stock      int             `json:"stock"`
	BrandID    *int64          `json:"brand_id"`
	CategoryID *int64          `json:"category_id"`
	ProviderID *int64          `json:"provider_id"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

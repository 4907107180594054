package dto

import "time"

// ── Account ───────────────────────────────────────────────────────────────────

type CreateAccountRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AccountResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── BarTable ──────────────────────────────────────────────────────────────────

type CreateBarTableRequest struct {
	Number int `json:"number"`
	Seats  int `json:"seats"`
}

type UpdateBarTableRequest struct {
	Number *int `json:"number"`
	Seats  *int `json:"seats"`
}

type BarTableResponse struct {
	ID        int64     `json:"id"`
	Number    int       `json:"number"`
	Seats     int       `json:"seats"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BarTableListResponse struct {
	Items []BarTableResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Brand ─────────────────────────────────────────────────────────────────────

type CreateBrandRequest struct {
	Name string `json:"name"`
}

type UpdateBrandRequest struct {
	Name *string `json:"name"`
}

type BrandResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BrandListResponse struct {
	Items []BrandResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ── Category ──────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Employee ──────────────────────────────────────────────────────────────────

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Document *string `json:"document"`
	Phone    *string `json:"phone"`
}

type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── PaymentMethod ─────────────────────────────────────────────────────────────

type CreatePaymentMethodRequest struct {
	Name      string `json:"name"`
	AccountID int64  `json:"account_id"`
}

type UpdatePaymentMethodRequest struct {
	Name      *string `json:"name"`
	AccountID *int64  `json:"account_id"`
}

type PaymentMethodResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	AccountID int64     `json:"account_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentMethodListResponse struct {
	Items []PaymentMethodResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ── Provider ──────────────────────────────────────────────────────────────────

type CreateProviderRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateProviderRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type ProviderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProviderListResponse struct {
	Items []ProviderResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

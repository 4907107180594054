package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC       *usecase.AccountUseCase
	BarTableUC      *usecase.BarTableUseCase
	BrandUC         *usecase.BrandUseCase
	CategoryUC      *usecase.CategoryUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	ProviderUC      *usecase.ProviderUseCase
	ProductUC       *usecase.ProductUseCase
	UserUC          *usecase.UserUseCase
	SaleUC          *usecase.SaleUseCase
	StockEntryUC    *usecase.StockEntryUseCase
	TransactionUC   *usecase.TransactionUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo: todas las entidades comparten las mismas rutas de ciclo de vida.
	RegisterLifecycleRoutes(api.Group("/accounts"), LifecycleOps[dto.CreateAccountRequest, dto.UpdateAccountRequest, dto.AccountResponse, dto.AccountListResponse]{
		Create:         deps.AccountUC.Create,
		Update:         deps.AccountUC.Update,
		Deactivate:     deps.AccountUC.Deactivate,
		Reactivate:     deps.AccountUC.Reactivate,
		ReactivateSwap: deps.AccountUC.ReactivateSwap,
		GetByID:        deps.AccountUC.GetByID,
		List:           deps.AccountUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/tables"), LifecycleOps[dto.CreateBarTableRequest, dto.UpdateBarTableRequest, dto.BarTableResponse, dto.BarTableListResponse]{
		Create:         deps.BarTableUC.Create,
		Update:         deps.BarTableUC.Update,
		Deactivate:     deps.BarTableUC.Deactivate,
		Reactivate:     deps.BarTableUC.Reactivate,
		ReactivateSwap: deps.BarTableUC.ReactivateSwap,
		GetByID:        deps.BarTableUC.GetByID,
		List:           deps.BarTableUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/brands"), LifecycleOps[dto.CreateBrandRequest, dto.UpdateBrandRequest, dto.BrandResponse, dto.BrandListResponse]{
		Create:         deps.BrandUC.Create,
		Update:         deps.BrandUC.Update,
		Deactivate:     deps.BrandUC.Deactivate,
		Reactivate:     deps.BrandUC.Reactivate,
		ReactivateSwap: deps.BrandUC.ReactivateSwap,
		GetByID:        deps.BrandUC.GetByID,
		List:           deps.BrandUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/categories"), LifecycleOps[dto.CreateCategoryRequest, dto.UpdateCategoryRequest, dto.CategoryResponse, dto.CategoryListResponse]{
		Create:         deps.CategoryUC.Create,
		Update:         deps.CategoryUC.Update,
		Deactivate:     deps.CategoryUC.Deactivate,
		Reactivate:     deps.CategoryUC.Reactivate,
		ReactivateSwap: deps.CategoryUC.ReactivateSwap,
		GetByID:        deps.CategoryUC.GetByID,
		List:           deps.CategoryUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/employees"), LifecycleOps[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse, dto.EmployeeListResponse]{
		Create:         deps.EmployeeUC.Create,
		Update:         deps.EmployeeUC.Update,
		Deactivate:     deps.EmployeeUC.Deactivate,
		Reactivate:     deps.EmployeeUC.Reactivate,
		ReactivateSwap: deps.EmployeeUC.ReactivateSwap,
		GetByID:        deps.EmployeeUC.GetByID,
		List:           deps.EmployeeUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/payment-methods"), LifecycleOps[dto.CreatePaymentMethodRequest, dto.UpdatePaymentMethodRequest, dto.PaymentMethodResponse, dto.PaymentMethodListResponse]{
		Create:         deps.PaymentMethodUC.Create,
		Update:         deps.PaymentMethodUC.Update,
		Deactivate:     deps.PaymentMethodUC.Deactivate,
		Reactivate:     deps.PaymentMethodUC.Reactivate,
		ReactivateSwap: deps.PaymentMethodUC.ReactivateSwap,
		GetByID:        deps.PaymentMethodUC.GetByID,
		List:           deps.PaymentMethodUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/providers"), LifecycleOps[dto.CreateProviderRequest, dto.UpdateProviderRequest, dto.ProviderResponse, dto.ProviderListResponse]{
		Create:         deps.ProviderUC.Create,
		Update:         deps.ProviderUC.Update,
		Deactivate:     deps.ProviderUC.Deactivate,
		Reactivate:     deps.ProviderUC.Reactivate,
		ReactivateSwap: deps.ProviderUC.ReactivateSwap,
		GetByID:        deps.ProviderUC.GetByID,
		List:           deps.ProviderUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/products"), LifecycleOps[dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse, dto.ProductListResponse]{
		Create:         deps.ProductUC.Create,
		Update:         deps.ProductUC.Update,
		Deactivate:     deps.ProductUC.Deactivate,
		Reactivate:     deps.ProductUC.Reactivate,
		ReactivateSwap: deps.ProductUC.ReactivateSwap,
		GetByID:        deps.ProductUC.GetByID,
		List:           deps.ProductUC.List,
	})
	RegisterLifecycleRoutes(api.Group("/users"), LifecycleOps[dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse, dto.UserListResponse]{
		Create:         deps.UserUC.Create,
		Update:         deps.UserUC.Update,
		Deactivate:     deps.UserUC.Deactivate,
		Reactivate:     deps.UserUC.Reactivate,
		ReactivateSwap: deps.UserUC.ReactivateSwap,
		GetByID:        deps.UserUC.GetByID,
		List:           deps.UserUC.List,
	})

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Entradas de mercancía
	stockEntries := api.Group("/stock-entries")
	stockEntryHandler := NewStockEntryHandler(deps.StockEntryUC)
	stockEntries.Post("/", stockEntryHandler.Create)
	stockEntries.Get("/", stockEntryHandler.List)

	// Movimientos de caja
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.ListByAccount)
}

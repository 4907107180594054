package repository

import (
	"context"
	"time"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
)

// Puertos de persistencia (DIP). Cada entidad de catálogo embebe el contrato
// genérico del motor de ciclo de vida y añade sus listados propios.

// AccountRepository puerto de Account.
type AccountRepository interface {
	lifecycle.Store[*entity.Account]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Account, error)
}

// BarTableRepository puerto de BarTable.
type BarTableRepository interface {
	lifecycle.Store[*entity.BarTable]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.BarTable, error)
}

// BrandRepository puerto de Brand.
type BrandRepository interface {
	lifecycle.Store[*entity.Brand]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Brand, error)
}

// CategoryRepository puerto de Category.
type CategoryRepository interface {
	lifecycle.Store[*entity.Category]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Category, error)
}

// EmployeeRepository puerto de Employee.
type EmployeeRepository interface {
	lifecycle.Store[*entity.Employee]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Employee, error)
}

// PaymentMethodRepository puerto de PaymentMethod.
type PaymentMethodRepository interface {
	lifecycle.Store[*entity.PaymentMethod]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.PaymentMethod, error)
}

// ProviderRepository puerto de Provider.
type ProviderRepository interface {
	lifecycle.Store[*entity.Provider]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Provider, error)
}

// ProductRepository puerto de Product. AdjustStock suma delta (negativo al
// vender, positivo al recibir mercancía) y debe invocarse dentro de la
// transacción del documento que lo origina.
type ProductRepository interface {
	lifecycle.Store[*entity.Product]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Product, error)
	AdjustStock(ctx context.Context, id int64, delta int) error
}

// UserRepository puerto de User.
type UserRepository interface {
	lifecycle.Store[*entity.User]
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.User, error)
}

// SaleRepository puerto de Sale (documento, sin ciclo de vida).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListByDay(ctx context.Context, day time.Time, limit, offset int) ([]*entity.Sale, error)
}

// StockEntryRepository puerto de StockEntry.
type StockEntryRepository interface {
	Create(ctx context.Context, e *entity.StockEntry) (*entity.StockEntry, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error)
}

// TransactionRepository puerto de Transaction.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*entity.Transaction, error)
}

// SaleTxRunner ejecuta el cierre de una venta como una sola transacción:
// insertar el documento, descontar stock y postear el ingreso en caja.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(sales SaleRepository, products ProductRepository, txs TransactionRepository) error) error
}

// StockTxRunner ejecuta una entrada de stock (documento + incremento) atómicamente.
type StockTxRunner interface {
	RunStockEntry(ctx context.Context, fn func(entries StockEntryRepository, products ProductRepository) error) error
}

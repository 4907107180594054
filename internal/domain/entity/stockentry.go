package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry entrada de mercancía de un proveedor. Registrarla incrementa el
// stock del producto en la misma transacción.
type StockEntry struct {
	ID         int64
	ProductID  int64
	ProviderID *int64
	Quantity   int
	UnitCost   decimal.Decimal
	CreatedAt  time.Time
}

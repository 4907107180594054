package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta cerrada de una mesa. Documento append-only: referencia al
// catálogo pero no participa del motor de ciclo de vida.
type Sale struct {
	ID              int64
	BarTableID      int64
	EmployeeID      int64
	PaymentMethodID int64
	Total           decimal.Decimal
	Lines           []SaleLine
	CreatedAt       time.Time
}

// SaleLine renglón de una venta. UnitPrice se congela al momento de vender.
type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

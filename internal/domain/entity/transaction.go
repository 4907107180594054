package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	TransactionIn  = "in"
	TransactionOut = "out"
)

// Transaction movimiento de dinero sobre una cuenta. Las ventas postean el
// ingreso automáticamente; también se admiten movimientos manuales.
type Transaction struct {
	ID        int64
	AccountID int64
	Kind      string // in, out
	Amount    decimal.Decimal
	Concept   string
	SaleID    *int64 // presente si lo generó una venta
	CreatedAt time.Time
}

package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del inventario. La clave natural es el código numérico;
// la unicidad se compara sobre el valor, no sobre el string. Las referencias
// a marca/categoría/proveedor son anulables: al desactivar la entidad
// referenciada el operador puede elegir clear-link en lugar de cascada.
type Product struct {
	ID            int64
	Code          int64
	NormalizedKey string
	Name          string
	Price         decimal.Decimal // precio de venta
	Cost          decimal.Decimal // costo de compra más reciente
	Stock         int
	BrandID       *int64
	CategoryID    *int64
	ProviderID    *int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Product) EntityID() int64           { return p.ID }
func (p *Product) SetEntityID(id int64)      { p.ID = id }
func (p *Product) IsActive() bool            { return p.Active }
func (p *Product) SetActive(active bool)     { p.Active = active }
func (p *Product) NaturalKey() string        { return strconv.FormatInt(p.Code, 10) }
func (p *Product) KeyNormalized() string     { return p.NormalizedKey }
func (p *Product) SetKeyNormalized(k string) { p.NormalizedKey = k }

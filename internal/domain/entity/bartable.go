package entity

import (
	"strconv"
	"time"
)

// BarTable mesa del salón. La clave natural es el número: la unicidad se
// compara sobre el valor numérico (la representación base-10 canónica),
// nunca sobre el string crudo del formulario.
type BarTable struct {
	ID            int64
	Number        int
	NormalizedKey string
	Seats         int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t *BarTable) EntityID() int64           { return t.ID }
func (t *BarTable) SetEntityID(id int64)      { t.ID = id }
func (t *BarTable) IsActive() bool            { return t.Active }
func (t *BarTable) SetActive(active bool)     { t.Active = active }
func (t *BarTable) NaturalKey() string        { return strconv.Itoa(t.Number) }
func (t *BarTable) KeyNormalized() string     { return t.NormalizedKey }
func (t *BarTable) SetKeyNormalized(k string) { t.NormalizedKey = k }

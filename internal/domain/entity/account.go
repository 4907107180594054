package entity

import "time"

// Account cuenta de dinero de la caja (efectivo, banco, datáfono...).
// Nunca se borra físicamente: Active marca el borrado suave.
type Account struct {
	ID            int64
	Name          string
	NormalizedKey string // derivada de Name; recalculada en cada escritura de la clave
	Description   string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a *Account) EntityID() int64           { return a.ID }
func (a *Account) SetEntityID(id int64)      { a.ID = id }
func (a *Account) IsActive() bool            { return a.Active }
func (a *Account) SetActive(active bool)     { a.Active = active }
func (a *Account) NaturalKey() string        { return a.Name }
func (a *Account) KeyNormalized() string     { return a.NormalizedKey }
func (a *Account) SetKeyNormalized(k string) { a.NormalizedKey = k }

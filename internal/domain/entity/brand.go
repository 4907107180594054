package entity

import "time"

// Brand marca de productos.
type Brand struct {
	ID            int64
	Name          string
	NormalizedKey string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b *Brand) EntityID() int64           { return b.ID }
func (b *Brand) SetEntityID(id int64)      { b.ID = id }
func (b *Brand) IsActive() bool            { return b.Active }
func (b *Brand) SetActive(active bool)     { b.Active = active }
func (b *Brand) NaturalKey() string        { return b.Name }
func (b *Brand) KeyNormalized() string     { return b.NormalizedKey }
func (b *Brand) SetKeyNormalized(k string) { b.NormalizedKey = k }

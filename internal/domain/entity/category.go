package entity

import "time"

// Category categoría de productos (cervezas, licores, comidas...).
type Category struct {
	ID            int64
	Name          string
	NormalizedKey string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Category) EntityID() int64           { return c.ID }
func (c *Category) SetEntityID(id int64)      { c.ID = id }
func (c *Category) IsActive() bool            { return c.Active }
func (c *Category) SetActive(active bool)     { c.Active = active }
func (c *Category) NaturalKey() string        { return c.Name }
func (c *Category) KeyNormalized() string     { return c.NormalizedKey }
func (c *Category) SetKeyNormalized(k string) { c.NormalizedKey = k }

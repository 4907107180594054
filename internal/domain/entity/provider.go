package entity

import "time"

// Provider proveedor de mercancía.
type Provider struct {
	ID            int64
	Name          string
	NormalizedKey string
	Phone         string
	Email         string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Provider) EntityID() int64           { return p.ID }
func (p *Provider) SetEntityID(id int64)      { p.ID = id }
func (p *Provider) IsActive() bool            { return p.Active }
func (p *Provider) SetActive(active bool)     { p.Active = active }
func (p *Provider) NaturalKey() string        { return p.Name }
func (p *Provider) KeyNormalized() string     { return p.NormalizedKey }
func (p *Provider) SetKeyNormalized(k string) { p.NormalizedKey = k }

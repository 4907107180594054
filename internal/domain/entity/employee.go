package entity

import "time"

// Employee empleado del negocio (mesero, cajero). Distinto de User: esto es
// la ficha de personal, no la cuenta de acceso.
type Employee struct {
	ID            int64
	Name          string
	NormalizedKey string
	Document      string
	Phone         string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e *Employee) EntityID() int64           { return e.ID }
func (e *Employee) SetEntityID(id int64)      { e.ID = id }
func (e *Employee) IsActive() bool            { return e.Active }
func (e *Employee) SetActive(active bool)     { e.Active = active }
func (e *Employee) NaturalKey() string        { return e.Name }
func (e *Employee) KeyNormalized() string     { return e.NormalizedKey }
func (e *Employee) SetKeyNormalized(k string) { e.NormalizedKey = k }

package entity

import "time"

// PaymentMethod medio de pago (efectivo, tarjeta, transferencia). Siempre
// apunta a la cuenta donde se deposita el dinero; la referencia no se borra
// en cascada, es sujeto del DependencyGuard al desactivar la cuenta.
type PaymentMethod struct {
	ID            int64
	Name          string
	NormalizedKey string
	AccountID     int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m *PaymentMethod) EntityID() int64           { return m.ID }
func (m *PaymentMethod) SetEntityID(id int64)      { m.ID = id }
func (m *PaymentMethod) IsActive() bool            { return m.Active }
func (m *PaymentMethod) SetActive(active bool)     { m.Active = active }
func (m *PaymentMethod) NaturalKey() string        { return m.Name }
func (m *PaymentMethod) KeyNormalized() string     { return m.NormalizedKey }
func (m *PaymentMethod) SetKeyNormalized(k string) { m.NormalizedKey = k }

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleWaiter  = "waiter"
)

// User cuenta de acceso al sistema. El usuario administrador nunca puede
// desactivarse: es una política fija, no un conteo de dependientes.
type User struct {
	ID            int64
	Username      string
	NormalizedKey string
	PasswordHash  string // bcrypt, nunca en claro después de persistir
	FullName      string
	Role          string // admin, cashier, waiter
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) EntityID() int64           { return u.ID }
func (u *User) SetEntityID(id int64)      { u.ID = id }
func (u *User) IsActive() bool            { return u.Active }
func (u *User) SetActive(active bool)     { u.Active = active }
func (u *User) NaturalKey() string        { return u.Username }
func (u *User) KeyNormalized() string     { return u.NormalizedKey }
func (u *User) SetKeyNormalized(k string) { u.NormalizedKey = k }

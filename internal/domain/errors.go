package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidSwap  = errors.New("swap inválido: los registros no cumplen las precondiciones")
)

// ConflictError duplicado sobre la clave natural normalizada. Siempre lleva el
// id del registro en colisión para que el caller pueda ofrecer reactivación
// (Inactive=true) o reportar el conflicto duro (Inactive=false).
type ConflictError struct {
	Kind       string // tipo de entidad: brand, account, bar_table...
	ExistingID int64
	Inactive   bool // true: el duplicado está inactivo y es reactivable
}

// Code devuelve el código estructurado, p.ej. BRAND_EXISTS_ACTIVE.
func (e *ConflictError) Code() string {
	suffix := "_EXISTS_ACTIVE"
	if e.Inactive {
		suffix = "_EXISTS_INACTIVE"
	}
	return strings.ToUpper(e.Kind) + suffix
}

func (e *ConflictError) Error() string {
	state := "activo"
	if e.Inactive {
		state = "inactivo"
	}
	return fmt.Sprintf("%s: ya existe un registro %s con esa clave (id=%d)", e.Kind, state, e.ExistingID)
}

// AlreadyActiveError reactivación pedida sobre un registro ya activo.
// Se trata como conflicto (suele indicar estado stale en el cliente), no como éxito silencioso.
type AlreadyActiveError struct {
	Kind string
	ID   int64
}

func (e *AlreadyActiveError) Error() string {
	return fmt.Sprintf("%s %d ya está activo", e.Kind, e.ID)
}

// ProtectedError operación prohibida por política fija (p.ej. el usuario
// administrador nunca se desactiva). No es reintentable con estrategia.
type ProtectedError struct {
	Kind   string
	ID     int64
	Reason string
}

func (e *ProtectedError) Error() string {
	return fmt.Sprintf("%s %d protegido: %s", e.Kind, e.ID, e.Reason)
}

// DependencyError desactivación bloqueada por dependientes vivos. Lleva los
// conteos por tipo dependiente y las estrategias válidas para que el caller
// pueda reintentar con una estrategia explícita sin re-consultar.
type DependencyError struct {
	Kind       string
	ID         int64
	Counts     map[string]int // tipo dependiente -> filas activas
	Strategies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s %d tiene dependientes activos: %v", e.Kind, e.ID, e.Counts)
}

package lifecycle

import (
	"fmt"

	"github.com/barrapos/backoffice-api/internal/domain"
)

// Strategy resolución elegida por el operador para los dependientes al
// desactivar una entidad referenciada. Enum cerrado: el borde HTTP valida la
// cadena una sola vez y el núcleo nunca ve strings libres.
type Strategy int

const (
	// StrategyCancel aborta sin cambios.
	StrategyCancel Strategy = iota
	// StrategyCascade desactiva todos los dependientes vivos y luego el objetivo.
	StrategyCascade
	// StrategyClearLink anula la fk en los dependientes vivos y luego desactiva
	// el objetivo. Solo válida cuando el dependiente puede existir sin el vínculo.
	StrategyClearLink
)

func (s Strategy) String() string {
	switch s {
	case StrategyCancel:
		return "cancel"
	case StrategyCascade:
		return "cascade-deactivate-dependents"
	case StrategyClearLink:
		return "clear-link"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy valida una cadena de estrategia en el borde.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "cancel":
		return StrategyCancel, nil
	case "cascade-deactivate-dependents":
		return StrategyCascade, nil
	case "clear-link":
		return StrategyClearLink, nil
	default:
		return StrategyCancel, fmt.Errorf("estrategia desconocida %q: %w", s, domain.ErrInvalidInput)
	}
}

// StrategyNames representación textual de un conjunto de estrategias (para payloads de error).
func StrategyNames(ss []Strategy) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.String())
	}
	return out
}

// DependentSpec describe un tipo dependiente: la entidad que referencia y la
// columna fk que apunta al registro a desactivar.
type DependentSpec struct {
	Kind     string // tipo dependiente, p.ej. "payment_method"
	FK       string // columna fk, p.ej. "account_id"
	Nullable bool   // true si la fk puede anularse (habilita clear-link)
}

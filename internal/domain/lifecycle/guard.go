package lifecycle

import "context"

// PlanKind clasificación de una desactivación.
type PlanKind int

const (
	// PlanFree sin dependientes vivos: desactivar de inmediato.
	PlanFree PlanKind = iota
	// PlanBlocked hay dependientes vivos: el caller debe reinvocar con una
	// estrategia explícita. El guard nunca elige una por defecto.
	PlanBlocked
)

// DeactivationPlan resultado del guard: conteos por tipo dependiente y las
// estrategias válidas para esta entidad.
type DeactivationPlan struct {
	Kind       PlanKind
	Counts     map[string]int
	Strategies []Strategy
}

// Guard cuenta dependientes vivos antes de una desactivación.
type Guard[E Entity] struct {
	deps       []DependentSpec
	strategies []Strategy
}

// NewGuard construye el guard con los specs y estrategias del tipo de entidad.
func NewGuard[E Entity](deps []DependentSpec, strategies []Strategy) *Guard[E] {
	return &Guard[E]{deps: deps, strategies: strategies}
}

// Evaluate cuenta filas activas por cada DependentSpec. Todos cero -> PlanFree.
// Cualquier conteo positivo -> PlanBlocked con los conteos y las estrategias
// configuradas (cancel siempre está disponible de forma implícita).
func (g *Guard[E]) Evaluate(ctx context.Context, store Store[E], id int64) (DeactivationPlan, error) {
	if len(g.deps) == 0 {
		return DeactivationPlan{Kind: PlanFree}, nil
	}
	counts := make(map[string]int, len(g.deps))
	blocked := false
	for _, dep := range g.deps {
		n, err := store.CountActiveDependents(ctx, dep, id)
		if err != nil {
			return DeactivationPlan{}, err
		}
		if n > 0 {
			counts[dep.Kind] = n
			blocked = true
		}
	}
	if !blocked {
		return DeactivationPlan{Kind: PlanFree}, nil
	}
	return DeactivationPlan{Kind: PlanBlocked, Counts: counts, Strategies: g.strategies}, nil
}

// Allows indica si la estrategia está configurada para este tipo de entidad.
func (g *Guard[E]) Allows(s Strategy) bool {
	if s == StrategyCancel {
		return true
	}
	for _, allowed := range g.strategies {
		if allowed == s {
			return true
		}
	}
	return false
}

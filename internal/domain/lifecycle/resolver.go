package lifecycle

import "context"

// Op operación que dispara la detección de conflictos.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpReactivate
	OpReactivateSwap
)

// OutcomeKind resultado de la evaluación de unicidad.
type OutcomeKind int

const (
	// OutcomeClear no hay colisión: proceder con la escritura.
	OutcomeClear OutcomeKind = iota
	// OutcomeConflictActive un duplicado vivo bloquea la operación.
	OutcomeConflictActive
	// OutcomeConflictInactive existe un duplicado dormido; el caller puede
	// ofrecer reactivación en lugar de fallar a secas.
	OutcomeConflictInactive
)

// Outcome decisión del resolver; ExistingID acompaña a todo conflicto.
type Outcome struct {
	Kind       OutcomeKind
	ExistingID int64
}

// Resolver detección de conflictos de unicidad sobre la clave normalizada.
// Aplica el mismo algoritmo a todos los tipos de entidad.
type Resolver[E Entity] struct {
	store Store[E]
}

// NewResolver construye el resolver sobre el puerto de persistencia.
func NewResolver[E Entity](store Store[E]) *Resolver[E] {
	return &Resolver[E]{store: store}
}

// Evaluate busca cualquier registro (activo o inactivo) que comparta key,
// excluyendo excludeID (un registro no colisiona consigo mismo). Para
// reactivate-swap, swapCurrentID es el registro activo que será desplazado:
// encontrarlo activo con la misma clave es lo esperado, no un conflicto.
//
// Es una optimización del caso común: la garantía real de unicidad es el
// índice único del store, que hace fallar en commit al perdedor de una
// carrera concurrente.
func (r *Resolver[E]) Evaluate(ctx context.Context, op Op, key string, excludeID, swapCurrentID int64) (Outcome, error) {
	e, found, err := r.store.FindByKey(ctx, key, excludeID)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		return Outcome{Kind: OutcomeClear}, nil
	}
	if e.IsActive() {
		if op == OpReactivateSwap && e.EntityID() == swapCurrentID {
			return Outcome{Kind: OutcomeClear}, nil
		}
		return Outcome{Kind: OutcomeConflictActive, ExistingID: e.EntityID()}, nil
	}
	return Outcome{Kind: OutcomeConflictInactive, ExistingID: e.EntityID()}, nil
}

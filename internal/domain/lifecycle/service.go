package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// Config parametriza el motor de ciclo de vida para un tipo de entidad:
// tipo (para códigos de error), dependientes, estrategias permitidas y
// política de protección. Se configura una vez por entidad en lugar de
// reimplementar el patrón por copia.
type Config[E Entity] struct {
	// Kind nombre del tipo en snake_case: "brand", "bar_table", "payment_method"...
	Kind string
	// Dependents tipos que referencian a esta entidad vía fk.
	Dependents []DependentSpec
	// Strategies estrategias de resolución válidas al desactivar con dependientes.
	Strategies []Strategy
	// Protected política fija que prohíbe desactivar ciertos registros
	// (p.ej. el usuario administrador). nil = sin protección.
	Protected func(E) bool
	// ProtectedReason texto para el error de política.
	ProtectedReason string
}

// Service orquesta Resolver + Guard + Store en las operaciones públicas del
// ciclo de vida: Create, Update, Deactivate, Reactivate y ReactivateSwap.
// Sin estado mutable entre llamadas; la persistencia es el único recurso
// compartido.
type Service[E Entity] struct {
	cfg      Config[E]
	store    Store[E]
	resolver *Resolver[E]
	guard    *Guard[E]
	log      *logger.Logger
}

// NewService construye el servicio para un tipo de entidad.
func NewService[E Entity](cfg Config[E], store Store[E], log *logger.Logger) *Service[E] {
	if log == nil {
		log = logger.Nop()
	}
	return &Service[E]{
		cfg:      cfg,
		store:    store,
		resolver: NewResolver(store),
		guard:    NewGuard[E](cfg.Dependents, cfg.Strategies),
		log:      log,
	}
}

// Kind devuelve el nombre del tipo configurado.
func (s *Service[E]) Kind() string { return s.cfg.Kind }

// Get busca por id sin importar el estado activo.
func (s *Service[E]) Get(ctx context.Context, id int64) (E, error) {
	e, found, err := s.store.FindByID(ctx, id)
	if err != nil {
		return e, err
	}
	if !found {
		return e, fmt.Errorf("%s %d: %w", s.cfg.Kind, id, domain.ErrNotFound)
	}
	return e, nil
}

// Create inserta una fila nueva con active=true tras pasar el resolver en
// modo create. Un duplicado activo es conflicto duro; uno inactivo se reporta
// como recuperable (el caller puede ofrecer Reactivate); nunca se
// auto-fusiona: decidir si el registro viejo "es el mismo" es una decisión
// de negocio, no de integridad.
func (s *Service[E]) Create(ctx context.Context, e E) (E, error) {
	key := Normalize(e.NaturalKey())
	outcome, err := s.resolver.Evaluate(ctx, OpCreate, key, 0, 0)
	if err != nil {
		return e, err
	}
	if outcome.Kind != OutcomeClear {
		return e, s.conflictError(outcome)
	}

	e.SetActive(true)
	e.SetKeyNormalized(key)
	created, err := s.store.Insert(ctx, e)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Perdimos la carrera contra un create concurrente: el índice
			// único del store es la garantía real. Mapear al conflicto tipado.
			return e, s.conflictFromStore(ctx, key, 0)
		}
		return e, err
	}
	s.log.Info().Str("kind", s.cfg.Kind).Int64("id", created.EntityID()).Msg("entidad creada")
	return created, nil
}

// Update aplica mutate sobre el registro y persiste. Solo si la clave natural
// cambió se reevalúa la unicidad (excluyendo el propio id); los cambios en
// campos no clave nunca disparan el resolver.
func (s *Service[E]) Update(ctx context.Context, id int64, mutate func(E) error) (E, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	oldKey := cur.KeyNormalized()
	if err := mutate(cur); err != nil {
		return cur, err
	}
	newKey := Normalize(cur.NaturalKey())
	if newKey != oldKey {
		outcome, err := s.resolver.Evaluate(ctx, OpUpdate, newKey, id, 0)
		if err != nil {
			return cur, err
		}
		if outcome.Kind != OutcomeClear {
			return cur, s.conflictError(outcome)
		}
		cur.SetKeyNormalized(newKey)
	}
	if err := s.store.Save(ctx, cur); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return cur, s.conflictFromStore(ctx, newKey, id)
		}
		return cur, err
	}
	return cur, nil
}

// Deactivate marca active=false; jamás borra filas. Un registro ya inactivo
// es un no-op exitoso (reintento idempotente). Si hay dependientes vivos y no
// se indicó estrategia, devuelve el plan como error accionable; con
// estrategia, la ejecuta en una sola transacción.
func (s *Service[E]) Deactivate(ctx context.Context, id int64, strategy *Strategy) (E, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	if s.cfg.Protected != nil && s.cfg.Protected(cur) {
		return cur, &domain.ProtectedError{Kind: s.cfg.Kind, ID: id, Reason: s.cfg.ProtectedReason}
	}
	if !cur.IsActive() {
		return cur, nil
	}

	plan, err := s.guard.Evaluate(ctx, s.store, id)
	if err != nil {
		return cur, err
	}
	if plan.Kind == PlanFree {
		if err := s.store.SetActive(ctx, id, false); err != nil {
			return cur, err
		}
		cur.SetActive(false)
		s.log.Info().Str("kind", s.cfg.Kind).Int64("id", id).Msg("entidad desactivada")
		return cur, nil
	}

	if strategy == nil || *strategy == StrategyCancel || !s.guard.Allows(*strategy) {
		return cur, &domain.DependencyError{
			Kind:       s.cfg.Kind,
			ID:         id,
			Counts:     plan.Counts,
			Strategies: StrategyNames(plan.Strategies),
		}
	}

	err = s.store.InTx(ctx, func(tx Store[E]) error {
		if err := s.applyStrategy(ctx, tx, *strategy, id); err != nil {
			return err
		}
		return tx.SetActive(ctx, id, false)
	})
	if err != nil {
		return cur, err
	}
	cur.SetActive(false)
	s.log.Info().Str("kind", s.cfg.Kind).Int64("id", id).Stringer("strategy", *strategy).Msg("entidad desactivada con estrategia")
	return cur, nil
}

// Reactivate vuelve a active=true conservando el mismo id. Requiere que el
// registro esté inactivo (si ya está activo es un conflicto 409, no un no-op:
// suele indicar estado stale del cliente). Si otro registro activo ya tiene
// la clave, se rehúsa: el caller debe usar ReactivateSwap.
func (s *Service[E]) Reactivate(ctx context.Context, id int64) (E, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	if cur.IsActive() {
		return cur, &domain.AlreadyActiveError{Kind: s.cfg.Kind, ID: id}
	}

	outcome, err := s.resolver.Evaluate(ctx, OpReactivate, cur.KeyNormalized(), id, 0)
	if err != nil {
		return cur, err
	}
	if outcome.Kind == OutcomeConflictActive {
		return cur, s.conflictError(outcome)
	}
	// OutcomeConflictInactive es legal aquí: varios inactivos pueden
	// compartir clave; la unicidad solo aplica entre activos.

	if err := s.store.SetActive(ctx, id, true); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return cur, s.conflictFromStore(ctx, cur.KeyNormalized(), id)
		}
		return cur, err
	}
	cur.SetActive(true)
	s.log.Info().Str("kind", s.cfg.Kind).Int64("id", id).Msg("entidad reactivada")
	return cur, nil
}

// ReactivateSwap par atómico: activa inactiveID y desactiva currentID (el
// poseedor actual de la clave en conflicto) en una sola transacción. Si las
// precondiciones no se cumplen, la operación aborta sin efecto parcial. El
// registro desplazado puede tener dependientes propios: aplica la misma
// negociación de estrategia que una desactivación normal.
func (s *Service[E]) ReactivateSwap(ctx context.Context, inactiveID, currentID int64, strategy *Strategy) (E, error) {
	target, err := s.Get(ctx, inactiveID)
	if err != nil {
		return target, err
	}
	if target.IsActive() {
		return target, &domain.AlreadyActiveError{Kind: s.cfg.Kind, ID: inactiveID}
	}
	cur, err := s.Get(ctx, currentID)
	if err != nil {
		return target, err
	}
	if !cur.IsActive() {
		return target, fmt.Errorf("%s %d no está activo: %w", s.cfg.Kind, currentID, domain.ErrInvalidSwap)
	}
	if cur.KeyNormalized() != target.KeyNormalized() {
		return target, fmt.Errorf("%s %d no posee la clave en conflicto: %w", s.cfg.Kind, currentID, domain.ErrInvalidSwap)
	}

	// Ningún otro activo puede tener la clave (currentID es el desplazado esperado).
	outcome, err := s.resolver.Evaluate(ctx, OpReactivateSwap, target.KeyNormalized(), inactiveID, currentID)
	if err != nil {
		return target, err
	}
	if outcome.Kind == OutcomeConflictActive {
		return target, s.conflictError(outcome)
	}

	if s.cfg.Protected != nil && s.cfg.Protected(cur) {
		return target, &domain.ProtectedError{Kind: s.cfg.Kind, ID: currentID, Reason: s.cfg.ProtectedReason}
	}

	plan, err := s.guard.Evaluate(ctx, s.store, currentID)
	if err != nil {
		return target, err
	}
	if plan.Kind == PlanBlocked {
		if strategy == nil || *strategy == StrategyCancel || !s.guard.Allows(*strategy) {
			return target, &domain.DependencyError{
				Kind:       s.cfg.Kind,
				ID:         currentID,
				Counts:     plan.Counts,
				Strategies: StrategyNames(plan.Strategies),
			}
		}
	}

	err = s.store.InTx(ctx, func(tx Store[E]) error {
		if plan.Kind == PlanBlocked {
			if err := s.applyStrategy(ctx, tx, *strategy, currentID); err != nil {
				return err
			}
		}
		// Desactivar primero al poseedor: el índice único parcial nunca ve
		// dos activos con la misma clave, ni siquiera dentro de la tx.
		if err := tx.SetActive(ctx, currentID, false); err != nil {
			return err
		}
		return tx.SetActive(ctx, inactiveID, true)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return target, s.conflictFromStore(ctx, target.KeyNormalized(), inactiveID)
		}
		return target, err
	}
	target.SetActive(true)
	s.log.Info().
		Str("kind", s.cfg.Kind).
		Int64("activated", inactiveID).
		Int64("deactivated", currentID).
		Msg("swap de reactivación aplicado")
	return target, nil
}

func (s *Service[E]) applyStrategy(ctx context.Context, tx Store[E], strategy Strategy, id int64) error {
	for _, dep := range s.cfg.Dependents {
		switch strategy {
		case StrategyCascade:
			if err := tx.DeactivateDependents(ctx, dep, id); err != nil {
				return err
			}
		case StrategyClearLink:
			if !dep.Nullable {
				return fmt.Errorf("clear-link no aplica a %s.%s: %w", dep.Kind, dep.FK, domain.ErrInvalidInput)
			}
			if err := tx.ClearDependentLinks(ctx, dep, id); err != nil {
				return err
			}
		default:
			return fmt.Errorf("estrategia %s no ejecutable: %w", strategy, domain.ErrInvalidInput)
		}
	}
	return nil
}

func (s *Service[E]) conflictError(o Outcome) error {
	return &domain.ConflictError{
		Kind:       s.cfg.Kind,
		ExistingID: o.ExistingID,
		Inactive:   o.Kind == OutcomeConflictInactive,
	}
}

// conflictFromStore reconstruye el conflicto tipado tras una violación de
// índice único en commit (carrera perdida): re-consulta para recuperar el id
// ganador y su estado.
func (s *Service[E]) conflictFromStore(ctx context.Context, key string, excludeID int64) error {
	e, found, err := s.store.FindByKey(ctx, key, excludeID)
	if err != nil || !found {
		return &domain.ConflictError{Kind: s.cfg.Kind}
	}
	return &domain.ConflictError{
		Kind:       s.cfg.Kind,
		ExistingID: e.EntityID(),
		Inactive:   !e.IsActive(),
	}
}

// Package memory implementa los puertos de persistencia en memoria, con
// transacciones por snapshot. Respalda la suite de tests sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
)

// DependentHandler operaciones sobre un tipo dependiente registradas en el
// store del referenciado (contraparte en memoria de los UPDATE ... WHERE fk=$1).
type DependentHandler interface {
	CountActive(fk string, id int64) int
	Deactivate(fk string, id int64)
	ClearFK(fk string, id int64)
	Snapshot() any
	Restore(snap any)
}

// Store implementación en memoria de lifecycle.Store[E]. El índice único
// parcial del esquema real se emula en Insert/SetActive/Save.
type Store[E lifecycle.Entity] struct {
	mu       sync.RWMutex
	rows     map[int64]E
	nextID   int64
	clone    func(E) E
	handlers map[string]DependentHandler // por DependentSpec.Kind
}

// NewStore construye el store; clone debe copiar en profundidad la entidad
// (los snapshots de transacción dependen de ello).
func NewStore[E lifecycle.Entity](clone func(E) E) *Store[E] {
	return &Store[E]{
		rows:     make(map[int64]E),
		nextID:   0,
		clone:    clone,
		handlers: make(map[string]DependentHandler),
	}
}

// RegisterDependent asocia el handler del tipo dependiente (por Kind del spec).
func (s *Store[E]) RegisterDependent(kind string, h DependentHandler) {
	s.handlers[kind] = h
}

// Len total de filas (activas e inactivas); los tests de no-borrado lo usan.
func (s *Store[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func (s *Store[E]) FindByID(ctx context.Context, id int64) (E, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByID(id)
}

func (s *Store[E]) findByID(id int64) (E, bool, error) {
	var zero E
	e, ok := s.rows[id]
	if !ok {
		return zero, false, nil
	}
	return s.clone(e), true, nil
}

func (s *Store[E]) FindByKey(ctx context.Context, key string, excludeID int64) (E, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByKey(key, excludeID)
}

// findByKey prioriza el registro activo; si no hay, el inactivo más reciente.
func (s *Store[E]) findByKey(key string, excludeID int64) (E, bool, error) {
	var zero E
	var newest E
	found := false
	for id, e := range s.rows {
		if id == excludeID || e.KeyNormalized() != key {
			continue
		}
		if e.IsActive() {
			return s.clone(e), true, nil
		}
		if !found || e.EntityID() > newest.EntityID() {
			newest = e
			found = true
		}
	}
	if !found {
		return zero, false, nil
	}
	return s.clone(newest), true, nil
}

func (s *Store[E]) Insert(ctx context.Context, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(e)
}

func (s *Store[E]) insert(e E) (E, error) {
	var zero E
	if e.IsActive() && s.activeKeyHolder(e.KeyNormalized(), 0) != 0 {
		return zero, domain.ErrDuplicate
	}
	s.nextID++
	c := s.clone(e)
	c.SetEntityID(s.nextID)
	s.rows[s.nextID] = c
	return s.clone(c), nil
}

func (s *Store[E]) Save(ctx context.Context, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(e)
}

func (s *Store[E]) save(e E) error {
	if _, ok := s.rows[e.EntityID()]; !ok {
		return domain.ErrNotFound
	}
	if e.IsActive() && s.activeKeyHolder(e.KeyNormalized(), e.EntityID()) != 0 {
		return domain.ErrDuplicate
	}
	s.rows[e.EntityID()] = s.clone(e)
	return nil
}

func (s *Store[E]) SetActive(ctx context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setActive(id, active)
}

func (s *Store[E]) setActive(id int64, active bool) error {
	e, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if active && s.activeKeyHolder(e.KeyNormalized(), id) != 0 {
		return domain.ErrDuplicate
	}
	c := s.clone(e)
	c.SetActive(active)
	s.rows[id] = c
	return nil
}

// activeKeyHolder emula el índice único parcial: id del activo que posee la
// clave, 0 si nadie.
func (s *Store[E]) activeKeyHolder(key string, excludeID int64) int64 {
	for id, e := range s.rows {
		if id != excludeID && e.IsActive() && e.KeyNormalized() == key {
			return id
		}
	}
	return 0
}

func (s *Store[E]) CountActiveDependents(ctx context.Context, dep lifecycle.DependentSpec, id int64) (int, error) {
	h, ok := s.handlers[dep.Kind]
	if !ok {
		return 0, nil
	}
	return h.CountActive(dep.FK, id), nil
}

func (s *Store[E]) DeactivateDependents(ctx context.Context, dep lifecycle.DependentSpec, id int64) error {
	if h, ok := s.handlers[dep.Kind]; ok {
		h.Deactivate(dep.FK, id)
	}
	return nil
}

func (s *Store[E]) ClearDependentLinks(ctx context.Context, dep lifecycle.DependentSpec, id int64) error {
	if h, ok := s.handlers[dep.Kind]; ok {
		h.ClearFK(dep.FK, id)
	}
	return nil
}

// InTx toma el lock completo, saca snapshot propio y de los dependientes y
// restaura todo si fn falla: sin efecto parcial observable, igual que la
// transacción real.
func (s *Store[E]) InTx(ctx context.Context, fn func(tx lifecycle.Store[E]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	depSnaps := make(map[string]any, len(s.handlers))
	for kind, h := range s.handlers {
		depSnaps[kind] = h.Snapshot()
	}

	if err := fn(&txStore[E]{s: s}); err != nil {
		s.restoreLocked(snap)
		for kind, h := range s.handlers {
			h.Restore(depSnaps[kind])
		}
		return err
	}
	return nil
}

func (s *Store[E]) snapshotLocked() map[int64]E {
	snap := make(map[int64]E, len(s.rows))
	for id, e := range s.rows {
		snap[id] = s.clone(e)
	}
	return snap
}

func (s *Store[E]) restoreLocked(snap map[int64]E) {
	s.rows = snap
}

// List listado genérico ordenado por id.
func (s *Store[E]) List(ctx context.Context, onlyActive bool, limit, offset int) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.rows))
	for id, e := range s.rows {
		if onlyActive && !e.IsActive() {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]E, 0, len(ids))
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.clone(s.rows[id]))
	}
	return out, nil
}

// txStore delega en el store ya bloqueado (InTx sostiene el mutex).
type txStore[E lifecycle.Entity] struct {
	s *Store[E]
}

func (t *txStore[E]) FindByID(ctx context.Context, id int64) (E, bool, error) {
	return t.s.findByID(id)
}

func (t *txStore[E]) FindByKey(ctx context.Context, key string, excludeID int64) (E, bool, error) {
	return t.s.findByKey(key, excludeID)
}

func (t *txStore[E]) Insert(ctx context.Context, e E) (E, error) { return t.s.insert(e) }
func (t *txStore[E]) Save(ctx context.Context, e E) error        { return t.s.save(e) }

func (t *txStore[E]) SetActive(ctx context.Context, id int64, active bool) error {
	return t.s.setActive(id, active)
}

func (t *txStore[E]) CountActiveDependents(ctx context.Context, dep lifecycle.DependentSpec, id int64) (int, error) {
	return t.s.CountActiveDependents(ctx, dep, id)
}

func (t *txStore[E]) DeactivateDependents(ctx context.Context, dep lifecycle.DependentSpec, id int64) error {
	return t.s.DeactivateDependents(ctx, dep, id)
}

func (t *txStore[E]) ClearDependentLinks(ctx context.Context, dep lifecycle.DependentSpec, id int64) error {
	return t.s.ClearDependentLinks(ctx, dep, id)
}

func (t *txStore[E]) InTx(ctx context.Context, fn func(tx lifecycle.Store[E]) error) error {
	// Ya dentro de la transacción: anidar es ejecutar en el mismo scope.
	return fn(t)
}

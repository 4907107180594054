package memory

import "github.com/barrapos/backoffice-api/internal/domain/lifecycle"

// fkHandler adapta un Store del tipo dependiente como DependentHandler del
// referenciado. get devuelve el valor de la fk nombrada y si está presente;
// clear la anula (nil cuando la fk no es anulable).
type fkHandler[D lifecycle.Entity] struct {
	store *Store[D]
	get   func(D, string) (int64, bool)
	clear func(D, string)
}

// DependentOn construye el handler sobre el store dependiente.
func DependentOn[D lifecycle.Entity](store *Store[D], get func(D, string) (int64, bool), clear func(D, string)) DependentHandler {
	return &fkHandler[D]{store: store, get: get, clear: clear}
}

func (h *fkHandler[D]) CountActive(fk string, id int64) int {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	n := 0
	for _, d := range h.store.rows {
		if !d.IsActive() {
			continue
		}
		if v, ok := h.get(d, fk); ok && v == id {
			n++
		}
	}
	return n
}

func (h *fkHandler[D]) Deactivate(fk string, id int64) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for rowID, d := range h.store.rows {
		if !d.IsActive() {
			continue
		}
		if v, ok := h.get(d, fk); ok && v == id {
			c := h.store.clone(d)
			c.SetActive(false)
			h.store.rows[rowID] = c
		}
	}
}

func (h *fkHandler[D]) ClearFK(fk string, id int64) {
	if h.clear == nil {
		return
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for rowID, d := range h.store.rows {
		if !d.IsActive() {
			continue
		}
		if v, ok := h.get(d, fk); ok && v == id {
			c := h.store.clone(d)
			h.clear(c, fk)
			h.store.rows[rowID] = c
		}
	}
}

func (h *fkHandler[D]) Snapshot() any {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return h.store.snapshotLocked()
}

func (h *fkHandler[D]) Restore(snap any) {
	rows, ok := snap.(map[int64]D)
	if !ok {
		return
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.restoreLocked(rows)
}

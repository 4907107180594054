package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
)

// tableSpec describe cómo una entidad con ciclo de vida se mapea a su tabla.
// Las columnas van en el mismo orden en values y en scan (id primero al leer).
type tableSpec[E lifecycle.Entity] struct {
	table   string
	columns []string
	values  func(E) []any
	scan    func(row pgx.Row) (E, error)
	stamp   func(e E, now time.Time, isNew bool)
}

// dependentTables mapea el tipo dependiente a su tabla.
var dependentTables = map[string]string{
	"payment_method": "payment_methods",
	"product":        "products",
}

// lifecycleRepo implementación genérica de lifecycle.Store sobre PostgreSQL.
// La unicidad entre activos la garantiza un índice único parcial
// (normalized_key) WHERE active: el perdedor de una carrera falla en commit
// con ErrDuplicate.
type lifecycleRepo[E lifecycle.Entity] struct {
	q    Querier
	pool *pgxpool.Pool // nil cuando q es una transacción
	spec tableSpec[E]
}

func (r *lifecycleRepo[E]) selectCols() string {
	return "id, " + strings.Join(r.spec.columns, ", ")
}

// FindByID busca por id sin importar el estado activo.
func (r *lifecycleRepo[E]) FindByID(ctx context.Context, id int64) (E, bool, error) {
	var zero E
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.selectCols(), r.spec.table)
	e, err := r.spec.scan(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("get %s: %w", r.spec.table, err)
	}
	return e, true, nil
}

// FindByKey busca por clave normalizada; un activo tiene prioridad y, si no
// hay, gana el inactivo más reciente.
func (r *lifecycleRepo[E]) FindByKey(ctx context.Context, key string, excludeID int64) (E, bool, error) {
	var zero E
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE normalized_key = $1 AND ($2 = 0 OR id <> $2)
		ORDER BY active DESC, updated_at DESC, id DESC
		LIMIT 1`, r.selectCols(), r.spec.table)
	e, err := r.spec.scan(r.q.QueryRow(ctx, query, key, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("get %s by key: %w", r.spec.table, err)
	}
	return e, true, nil
}

// Insert persiste una fila nueva y asigna el id.
func (r *lifecycleRepo[E]) Insert(ctx context.Context, e E) (E, error) {
	var zero E
	r.spec.stamp(e, time.Now(), true)

	placeholders := make([]string, len(r.spec.columns))
	for i := range r.spec.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		r.spec.table, strings.Join(r.spec.columns, ", "), strings.Join(placeholders, ", "))

	var id int64
	if err := r.q.QueryRow(ctx, query, r.spec.values(e)...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return zero, domain.ErrDuplicate
		}
		return zero, fmt.Errorf("insert %s: %w", r.spec.table, err)
	}
	e.SetEntityID(id)
	return e, nil
}

// Save escribe todos los campos mutables de una fila existente.
func (r *lifecycleRepo[E]) Save(ctx context.Context, e E) error {
	r.spec.stamp(e, time.Now(), false)

	sets := make([]string, len(r.spec.columns))
	for i, c := range r.spec.columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1`, r.spec.table, strings.Join(sets, ", "))

	args := append([]any{e.EntityID()}, r.spec.values(e)...)
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", r.spec.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update %s %d: %w", r.spec.table, e.EntityID(), domain.ErrNotFound)
	}
	return nil
}

// SetActive cambia solo el flag activo. Reactivar puede chocar contra el
// índice único parcial si otro activo ya ocupa la clave.
func (r *lifecycleRepo[E]) SetActive(ctx context.Context, id int64, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET active = $2, updated_at = now() WHERE id = $1`, r.spec.table)
	cmd, err := r.q.Exec(ctx, query, id, active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set active %s: %w", r.spec.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set active %s %d: %w", r.spec.table, id, domain.ErrNotFound)
	}
	return nil
}

// CountActiveDependents cuenta filas activas del dependiente que apuntan a id.
func (r *lifecycleRepo[E]) CountActiveDependents(ctx context.Context, dep lifecycle.DependentSpec, id int64) (int, error) {
	table, ok := dependentTables[dep.Kind]
	if !ok {
		return 0, fmt.Errorf("dependiente desconocido %q", dep.Kind)
	}
	var count int
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1 AND active`, table, dep.FK)
	if err := r.q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// DeactivateDependents desactiva todas las filas activas del dependiente que apuntan a id.
func (r *lifecycleRepo[E]) DeactivateDependents(ctx context.Context, dep lifecycle.DependentSpec, id int64) error {
	table, ok := dependentTables[dep.Kind]
	if !ok {
		return fmt.Errorf("dependiente desconocido %q", dep.Kind)
	}
	query := fmt.Sprintf(`UPDATE %s SET active = false, updated_at = now() WHERE %s = $1 AND active`, table, dep.FK)
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deactivate %s: %w", table, err)
	}
	return nil
}

// ClearDependentLinks anula la fk en las filas activas del dependiente que apuntan a id.
func (r *lifecycleRepo[E]) ClearDependentLinks(ctx context.Context, dep lifecycle.DependentSpec, id int64) error {
	table, ok := dependentTables[dep.Kind]
	if !ok {
		return fmt.Errorf("dependiente desconocido %q", dep.Kind)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL, updated_at = now() WHERE %s = $1 AND active`, table, dep.FK, dep.FK)
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("clear links %s: %w", table, err)
	}
	return nil
}

// InTx ejecuta fn contra un repo ligado a una transacción. Si el repo ya está
// dentro de una, reutiliza la misma.
func (r *lifecycleRepo[E]) InTx(ctx context.Context, fn func(tx lifecycle.Store[E]) error) error {
	if r.pool == nil {
		return fn(r)
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&lifecycleRepo[E]{q: tx, spec: r.spec}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// list listado paginado compartido por los repos de catálogo.
func (r *lifecycleRepo[E]) list(ctx context.Context, onlyActive bool, limit, offset int) ([]E, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE (NOT $1::bool OR active)
		ORDER BY id
		LIMIT $2 OFFSET $3`, r.selectCols(), r.spec.table)
	rows, err := r.q.Query(ctx, query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.spec.table, err)
	}
	defer rows.Close()

	var list []E
	for rows.Next() {
		e, err := r.spec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.spec.table, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

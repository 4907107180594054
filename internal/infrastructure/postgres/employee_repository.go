package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	lifecycleRepo[*entity.Employee]
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{lifecycleRepo[*entity.Employee]{q: pool, pool: pool, spec: employeeSpec()}}
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Employee, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func employeeSpec() tableSpec[*entity.Employee] {
	return tableSpec[*entity.Employee]{
		table:   "employees",
		columns: []string{"name", "normalized_key", "document", "phone", "active", "created_at", "updated_at"},
		values: func(e *entity.Employee) []any {
			return []any{e.Name, e.NormalizedKey, e.Document, e.Phone, e.Active, e.CreatedAt, e.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Employee, error) {
			var e entity.Employee
			err := row.Scan(&e.ID, &e.Name, &e.NormalizedKey, &e.Document, &e.Phone, &e.Active, &e.CreatedAt, &e.UpdatedAt)
			return &e, err
		},
		stamp: func(e *entity.Employee, now time.Time, isNew bool) {
			if isNew {
				e.CreatedAt = now
			}
			e.UpdatedAt = now
		},
	}
}

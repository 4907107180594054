package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.BarTableRepository = (*BarTableRepo)(nil)

// BarTableRepo implementación del puerto BarTableRepository sobre PostgreSQL.
type BarTableRepo struct {
	lifecycleRepo[*entity.BarTable]
}

// NewBarTableRepository construye el adaptador de persistencia para mesas.
func NewBarTableRepository(pool *pgxpool.Pool) *BarTableRepo {
	return &BarTableRepo{lifecycleRepo[*entity.BarTable]{q: pool, pool: pool, spec: barTableSpec()}}
}

// List lista mesas con paginación.
func (r *BarTableRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.BarTable, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func barTableSpec() tableSpec[*entity.BarTable] {
	return tableSpec[*entity.BarTable]{
		table:   "bar_tables",
		columns: []string{"number", "normalized_key", "seats", "active", "created_at", "updated_at"},
		values: func(t *entity.BarTable) []any {
			return []any{t.Number, t.NormalizedKey, t.Seats, t.Active, t.CreatedAt, t.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.BarTable, error) {
			var t entity.BarTable
			err := row.Scan(&t.ID, &t.Number, &t.NormalizedKey, &t.Seats, &t.Active, &t.CreatedAt, &t.UpdatedAt)
			return &t, err
		},
		stamp: func(t *entity.BarTable, now time.Time, isNew bool) {
			if isNew {
				t.CreatedAt = now
			}
			t.UpdatedAt = now
		},
	}
}

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	lifecycleRepo[*entity.Brand]
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{lifecycleRepo[*entity.Brand]{q: pool, pool: pool, spec: brandSpec()}}
}

// List lista marcas con paginación.
func (r *BrandRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Brand, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func brandSpec() tableSpec[*entity.Brand] {
	return tableSpec[*entity.Brand]{
		table:   "brands",
		columns: []string{"name", "normalized_key", "active", "created_at", "updated_at"},
		values: func(b *entity.Brand) []any {
			return []any{b.Name, b.NormalizedKey, b.Active, b.CreatedAt, b.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Brand, error) {
			var b entity.Brand
			err := row.Scan(&b.ID, &b.Name, &b.NormalizedKey, &b.Active, &b.CreatedAt, &b.UpdatedAt)
			return &b, err
		},
		stamp: func(b *entity.Brand, now time.Time, isNew bool) {
			if isNew {
				b.CreatedAt = now
			}
			b.UpdatedAt = now
		},
	}
}

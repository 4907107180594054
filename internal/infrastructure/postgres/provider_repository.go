package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	lifecycleRepo[*entity.Provider]
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepo {
	return &ProviderRepo{lifecycleRepo[*entity.Provider]{q: pool, pool: pool, spec: providerSpec()}}
}

// List lista proveedores con paginación.
func (r *ProviderRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Provider, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func providerSpec() tableSpec[*entity.Provider] {
	return tableSpec[*entity.Provider]{
		table:   "providers",
		columns: []string{"name", "normalized_key", "phone", "email", "active", "created_at", "updated_at"},
		values: func(p *entity.Provider) []any {
			return []any{p.Name, p.NormalizedKey, p.Phone, p.Email, p.Active, p.CreatedAt, p.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Provider, error) {
			var p entity.Provider
			err := row.Scan(&p.ID, &p.Name, &p.NormalizedKey, &p.Phone, &p.Email, &p.Active, &p.CreatedAt, &p.UpdatedAt)
			return &p, err
		},
		stamp: func(p *entity.Provider, now time.Time, isNew bool) {
			if isNew {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	}
}

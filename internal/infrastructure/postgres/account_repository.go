package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	lifecycleRepo[*entity.Account]
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{lifecycleRepo[*entity.Account]{q: pool, pool: pool, spec: accountSpec()}}
}

// List lista cuentas con paginación.
func (r *AccountRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Account, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func accountSpec() tableSpec[*entity.Account] {
	return tableSpec[*entity.Account]{
		table:   "accounts",
		columns: []string{"name", "normalized_key", "description", "active", "created_at", "updated_at"},
		values: func(a *entity.Account) []any {
			return []any{a.Name, a.NormalizedKey, a.Description, a.Active, a.CreatedAt, a.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Account, error) {
			var a entity.Account
			err := row.Scan(&a.ID, &a.Name, &a.NormalizedKey, &a.Description, &a.Active, &a.CreatedAt, &a.UpdatedAt)
			return &a, err
		},
		stamp: func(a *entity.Account, now time.Time, isNew bool) {
			if isNew {
				a.CreatedAt = now
			}
			a.UpdatedAt = now
		},
	}
}

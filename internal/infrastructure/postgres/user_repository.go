package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	lifecycleRepo[*entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{lifecycleRepo[*entity.User]{q: pool, pool: pool, spec: userSpec()}}
}

// List lista usuarios con paginación.
func (r *UserRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.User, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func userSpec() tableSpec[*entity.User] {
	return tableSpec[*entity.User]{
		table:   "users",
		columns: []string{"username", "normalized_key", "password_hash", "full_name", "role", "active", "created_at", "updated_at"},
		values: func(u *entity.User) []any {
			return []any{u.Username, u.NormalizedKey, u.PasswordHash, u.FullName, u.Role, u.Active, u.CreatedAt, u.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.User, error) {
			var u entity.User
			err := row.Scan(&u.ID, &u.Username, &u.NormalizedKey, &u.PasswordHash, &u.FullName, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
			return &u, err
		},
		stamp: func(u *entity.User, now time.Time, isNew bool) {
			if isNew {
				u.CreatedAt = now
			}
			u.UpdatedAt = now
		},
	}
}

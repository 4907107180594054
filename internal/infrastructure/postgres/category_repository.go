package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	lifecycleRepo[*entity.Category]
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{lifecycleRepo[*entity.Category]{q: pool, pool: pool, spec: categorySpec()}}
}

// List lista categorías con paginación.
func (r *CategoryRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Category, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func categorySpec() tableSpec[*entity.Category] {
	return tableSpec[*entity.Category]{
		table:   "categories",
		columns: []string{"name", "normalized_key", "active", "created_at", "updated_at"},
		values: func(c *entity.Category) []any {
			return []any{c.Name, c.NormalizedKey, c.Active, c.CreatedAt, c.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Category, error) {
			var c entity.Category
			err := row.Scan(&c.ID, &c.Name, &c.NormalizedKey, &c.Active, &c.CreatedAt, &c.UpdatedAt)
			return &c, err
		},
		stamp: func(c *entity.Category, now time.Time, isNew bool) {
			if isNew {
				c.CreatedAt = now
			}
			c.UpdatedAt = now
		},
	}
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	lifecycleRepo[*entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{lifecycleRepo[*entity.Product]{q: pool, pool: pool, spec: productSpec()}}
}

// newProductTxRepo ata el repo a una transacción en curso (usado por TxRunner).
func newProductTxRepo(tx pgx.Tx) *ProductRepo {
	return &ProductRepo{lifecycleRepo[*entity.Product]{q: tx, spec: productSpec()}}
}

// List lista productos con paginación.
func (r *ProductRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

// AdjustStock suma delta al stock del producto. Falla si el resultado sería
// negativo o el producto no existe.
func (r *ProductRepo) AdjustStock(ctx context.Context, id int64, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1 AND stock + $2 >= 0`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("ajustar stock del producto %d en %d: %w", id, delta, domain.ErrInvalidInput)
	}
	return nil
}

func productSpec() tableSpec[*entity.Product] {
	return tableSpec[*entity.Product]{
		table: "products",
		columns: []string{
			"code", "normalized_key", "name", "price", "cost", "stock",
			"brand_id", "category_id", "provider_id", "active", "created_at", "updated_at",
		},
		values: func(p *entity.Product) []any {
			return []any{
				p.Code, p.NormalizedKey, p.Name, p.Price, p.Cost, p.Stock,
				p.BrandID, p.CategoryID, p.ProviderID, p.Active, p.CreatedAt, p.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (*entity.Product, error) {
			var p entity.Product
			err := row.Scan(
				&p.ID, &p.Code, &p.NormalizedKey, &p.Name, &p.Price, &p.Cost, &p.Stock,
				&p.BrandID, &p.CategoryID, &p.ProviderID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
			)
			return &p, err
		},
		stamp: func(p *entity.Product, now time.Time, isNew bool) {
			if isNew {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	}
}

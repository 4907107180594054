package postgres

import (
	"context"
	"fmt"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del puerto StockEntryRepository sobre PostgreSQL (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador de persistencia para entradas de stock.
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create persiste una entrada de mercancía.
func (r *StockEntryRepo) Create(ctx context.Context, e *entity.StockEntry) (*entity.StockEntry, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO stock_entries (product_id, provider_id, quantity, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		e.ProductID, e.ProviderID, e.Quantity, e.UnitCost, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return nil, fmt.Errorf("insert stock entry: %w", err)
	}
	return e, nil
}

// List lista las entradas más recientes con paginación.
func (r *StockEntryRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, provider_id, quantity, unit_cost, created_at
		FROM stock_entries ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProviderID, &e.Quantity, &e.UnitCost, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

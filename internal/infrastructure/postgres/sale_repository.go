package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus renglones.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (bar_table_id, employee_id, payment_method_id, total, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		sale.BarTableID, sale.EmployeeID, sale.PaymentMethodID, sale.Total, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Lines {
		l := &sale.Lines[i]
		l.SaleID = sale.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO sale_lines (sale_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			l.SaleID, l.ProductID, l.Quantity, l.UnitPrice, l.Subtotal,
		).Scan(&l.ID)
		if err != nil {
			return nil, fmt.Errorf("insert sale line: %w", err)
		}
	}
	return sale, nil
}

// GetByID obtiene una venta con sus renglones. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `
		SELECT id, bar_table_id, employee_id, payment_method_id, total, created_at
		FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.BarTableID, &s.EmployeeID, &s.PaymentMethodID, &s.Total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	lines, err := r.linesFor(ctx, []int64{s.ID})
	if err != nil {
		return nil, err
	}
	s.Lines = lines[s.ID]
	return &s, nil
}

// ListByDay lista las ventas de un día con paginación.
func (r *SaleRepo) ListByDay(ctx context.Context, day time.Time, limit, offset int) ([]*entity.Sale, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	rows, err := r.q.Query(ctx, `
		SELECT id, bar_table_id, employee_id, payment_method_id, total, created_at
		FROM sales WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		from, to, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []int64
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.BarTableID, &s.EmployeeID, &s.PaymentMethodID, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Lines = lines[s.ID]
	}
	return list, nil
}

// linesFor carga los renglones de un conjunto de ventas en una sola consulta.
func (r *SaleRepo) linesFor(ctx context.Context, saleIDs []int64) (map[int64][]entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_lines WHERE sale_id = ANY($1) ORDER BY id`, saleIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]entity.SaleLine, len(saleIDs))
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		result[l.SaleID] = append(result[l.SaleID], l)
	}
	return result, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para movimientos de caja.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un movimiento de caja.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO transactions (account_id, kind, amount, concept, sale_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		t.AccountID, t.Kind, t.Amount, t.Concept, t.SaleID, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return t, nil
}

// ListByAccount lista los movimientos de una cuenta con paginación.
func (r *TransactionRepo) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, account_id, kind, amount, concept, sale_id, created_at
		FROM transactions WHERE account_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Kind, &t.Amount, &t.Concept, &t.SaleID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación del puerto PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	lifecycleRepo[*entity.PaymentMethod]
}

// NewPaymentMethodRepository construye el adaptador de persistencia para medios de pago.
func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{lifecycleRepo[*entity.PaymentMethod]{q: pool, pool: pool, spec: paymentMethodSpec()}}
}

// List lista medios de pago con paginación.
func (r *PaymentMethodRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.PaymentMethod, error) {
	return r.list(ctx, onlyActive, limit, offset)
}

func paymentMethodSpec() tableSpec[*entity.PaymentMethod] {
	return tableSpec[*entity.PaymentMethod]{
		table:   "payment_methods",
		columns: []string{"name", "normalized_key", "account_id", "active", "created_at", "updated_at"},
		values: func(m *entity.PaymentMethod) []any {
			return []any{m.Name, m.NormalizedKey, m.AccountID, m.Active, m.CreatedAt, m.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.PaymentMethod, error) {
			var m entity.PaymentMethod
			err := row.Scan(&m.ID, &m.Name, &m.NormalizedKey, &m.AccountID, &m.Active, &m.CreatedAt, &m.UpdatedAt)
			return &m, err
		},
		stamp: func(m *entity.PaymentMethod, now time.Time, isNew bool) {
			if isNew {
				m.CreatedAt = now
			}
			m.UpdatedAt = now
		},
	}
}

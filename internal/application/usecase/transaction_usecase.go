package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// TransactionUseCase movimientos manuales de caja.
type TransactionUseCase struct {
	txs      repository.TransactionRepository
	accounts repository.AccountRepository
	log      *logger.Logger
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txs repository.TransactionRepository, accounts repository.AccountRepository, log *logger.Logger) *TransactionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TransactionUseCase{txs: txs, accounts: accounts, log: log}
}

// Create registra un movimiento manual sobre una cuenta activa.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Kind != entity.TransactionIn && in.Kind != entity.TransactionOut {
		return nil, fmt.Errorf("tipo de movimiento %q: %w", in.Kind, domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("monto debe ser positivo: %w", domain.ErrInvalidInput)
	}

	acc, found, err := uc.accounts.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if !found || !acc.Active {
		return nil, fmt.Errorf("cuenta %d: %w", in.AccountID, domain.ErrNotFound)
	}

	t, err := uc.txs.Create(ctx, &entity.Transaction{
		AccountID: in.AccountID,
		Kind:      in.Kind,
		Amount:    in.Amount,
		Concept:   in.Concept,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("transaction_id", t.ID).Int64("account_id", t.AccountID).Str("kind", t.Kind).Msg("movimiento registrado")
	return toTransactionResponse(t), nil
}

// ListByAccount lista los movimientos de una cuenta.
func (uc *TransactionUseCase) ListByAccount(ctx context.Context, accountID int64, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	list, err := uc.txs.ListByAccount(ctx, accountID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:        t.ID,
		AccountID: t.AccountID,
		Kind:      t.Kind,
		Amount:    t.Amount,
		Concept:   t.Concept,
		SaleID:    t.SaleID,
		CreatedAt: t.CreatedAt,
	}
}

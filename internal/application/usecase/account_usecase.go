package usecase

import (
	"context"
	"time"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// AccountUseCase ciclo de vida de cuentas. Los medios de pago que apuntan a
// la cuenta solo admiten cascada: un medio de pago sin cuenta destino no
// significa nada.
type AccountUseCase struct {
	svc  *lifecycle.Service[*entity.Account]
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository, log *logger.Logger) *AccountUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.Account]{
		Kind:       "account",
		Dependents: []lifecycle.DependentSpec{{Kind: "payment_method", FK: "account_id"}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyCascade},
	}, repo, log)
	return &AccountUseCase{svc: svc, repo: repo}
}

// Create crea una cuenta nueva.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	now := time.Now()
	a, err := uc.svc.Create(ctx, &entity.Account{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// Update actualiza una cuenta.
func (uc *AccountUseCase) Update(ctx context.Context, id int64, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	a, err := uc.svc.Update(ctx, id, func(a *entity.Account) error {
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Description != nil {
			a.Description = *in.Description
		}
		a.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// Deactivate desactiva la cuenta; con medios de pago vivos exige cascada explícita.
func (uc *AccountUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.AccountResponse, error) {
	a, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// Reactivate vuelve la cuenta a activa.
func (uc *AccountUseCase) Reactivate(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	a, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// ReactivateSwap activa id desactivando currentID.
func (uc *AccountUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.AccountResponse, error) {
	a, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// GetByID obtiene una cuenta por id.
func (uc *AccountUseCase) GetByID(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	a, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// List lista cuentas con paginación.
func (uc *AccountUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.AccountListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return &dto.AccountListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Active:      a.Active,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

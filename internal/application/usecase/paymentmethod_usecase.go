package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// PaymentMethodUseCase ciclo de vida de medios de pago. Cada medio apunta a
// la cuenta donde deposita; la cuenta debe existir y estar activa al crear.
type PaymentMethodUseCase struct {
	svc      *lifecycle.Service[*entity.PaymentMethod]
	repo     repository.PaymentMethodRepository
	accounts repository.AccountRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository, accounts repository.AccountRepository, log *logger.Logger) *PaymentMethodUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.PaymentMethod]{
		Kind: "payment_method",
	}, repo, log)
	return &PaymentMethodUseCase{svc: svc, repo: repo, accounts: accounts}
}

func (uc *PaymentMethodUseCase) checkAccount(ctx context.Context, accountID int64) error {
	a, found, err := uc.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("account %d: %w", accountID, domain.ErrNotFound)
	}
	if !a.Active {
		return fmt.Errorf("account %d está inactiva: %w", accountID, domain.ErrInvalidInput)
	}
	return nil
}

// Create crea un medio de pago nuevo apuntando a una cuenta activa.
func (uc *PaymentMethodUseCase) Create(ctx context.Context, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if err := uc.checkAccount(ctx, in.AccountID); err != nil {
		return nil, err
	}
	now := time.Now()
	m, err := uc.svc.Create(ctx, &entity.PaymentMethod{
		Name:      in.Name,
		AccountID: in.AccountID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// Update actualiza un medio de pago; cambiar de cuenta revalida el destino.
func (uc *PaymentMethodUseCase) Update(ctx context.Context, id int64, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.AccountID != nil {
		if err := uc.checkAccount(ctx, *in.AccountID); err != nil {
			return nil, err
		}
	}
	m, err := uc.svc.Update(ctx, id, func(m *entity.PaymentMethod) error {
		if in.Name != nil {
			m.Name = *in.Name
		}
		if in.AccountID != nil {
			m.AccountID = *in.AccountID
		}
		m.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// Deactivate desactiva el medio de pago (sin dependientes, siempre libre).
func (uc *PaymentMethodUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.PaymentMethodResponse, error) {
	m, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// Reactivate vuelve el medio de pago a activo.
func (uc *PaymentMethodUseCase) Reactivate(ctx context.Context, id int64) (*dto.PaymentMethodResponse, error) {
	m, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// ReactivateSwap activa id desactivando currentID.
func (uc *PaymentMethodUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.PaymentMethodResponse, error) {
	m, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// GetByID obtiene un medio de pago por id.
func (uc *PaymentMethodUseCase) GetByID(ctx context.Context, id int64) (*dto.PaymentMethodResponse, error) {
	m, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// List lista medios de pago con paginación.
func (uc *PaymentMethodUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.PaymentMethodListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toPaymentMethodResponse(m))
	}
	return &dto.PaymentMethodListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:        m.ID,
		Name:      m.Name,
		AccountID: m.AccountID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

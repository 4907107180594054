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

// ProviderUseCase ciclo de vida de proveedores.
type ProviderUseCase struct {
	svc  *lifecycle.Service[*entity.Provider]
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository, log *logger.Logger) *ProviderUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.Provider]{
		Kind:       "provider",
		Dependents: []lifecycle.DependentSpec{{Kind: "product", FK: "provider_id", Nullable: true}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyClearLink, lifecycle.StrategyCascade},
	}, repo, log)
	return &ProviderUseCase{svc: svc, repo: repo}
}

// Create crea un proveedor nuevo.
func (uc *ProviderUseCase) Create(ctx context.Context, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	now := time.Now()
	p, err := uc.svc.Create(ctx, &entity.Provider{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Update actualiza un proveedor.
func (uc *ProviderUseCase) Update(ctx context.Context, id int64, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.svc.Update(ctx, id, func(p *entity.Provider) error {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Phone != nil {
			p.Phone = *in.Phone
		}
		if in.Email != nil {
			p.Email = *in.Email
		}
		p.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Deactivate desactiva el proveedor; con productos vivos exige estrategia.
func (uc *ProviderUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.ProviderResponse, error) {
	p, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Reactivate vuelve el proveedor a activo.
func (uc *ProviderUseCase) Reactivate(ctx context.Context, id int64) (*dto.ProviderResponse, error) {
	p, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// ReactivateSwap activa id desactivando currentID.
func (uc *ProviderUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.ProviderResponse, error) {
	p, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// GetByID obtiene un proveedor por id.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id int64) (*dto.ProviderResponse, error) {
	p, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// List lista proveedores con paginación.
func (uc *ProviderUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.ProviderListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p))
	}
	return &dto.ProviderListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

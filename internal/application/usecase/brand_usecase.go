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

// BrandUseCase ciclo de vida de marcas. Los productos que la referencian
// admiten clear-link (se quedan sin marca) o cascada.
type BrandUseCase struct {
	svc  *lifecycle.Service[*entity.Brand]
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository, log *logger.Logger) *BrandUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.Brand]{
		Kind:       "brand",
		Dependents: []lifecycle.DependentSpec{{Kind: "product", FK: "brand_id", Nullable: true}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyClearLink, lifecycle.StrategyCascade},
	}, repo, log)
	return &BrandUseCase{svc: svc, repo: repo}
}

// Create crea una marca nueva.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	now := time.Now()
	b, err := uc.svc.Create(ctx, &entity.Brand{Name: in.Name, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// Update actualiza una marca; el cambio de nombre reevalúa la unicidad.
func (uc *BrandUseCase) Update(ctx context.Context, id int64, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	b, err := uc.svc.Update(ctx, id, func(b *entity.Brand) error {
		if in.Name != nil {
			b.Name = *in.Name
		}
		b.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// Deactivate marca la marca como inactiva; con productos vivos exige estrategia.
func (uc *BrandUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.BrandResponse, error) {
	b, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// Reactivate vuelve la marca a activa (mismo id).
func (uc *BrandUseCase) Reactivate(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	b, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// ReactivateSwap activa id desactivando currentID en una sola transacción.
func (uc *BrandUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.BrandResponse, error) {
	b, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// GetByID obtiene una marca por id (activa o no).
func (uc *BrandUseCase) GetByID(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	b, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// List lista marcas con paginación.
func (uc *BrandUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.BrandListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBrandResponse(b))
	}
	return &dto.BrandListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

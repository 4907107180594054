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

// CategoryUseCase ciclo de vida de categorías; mismos dependientes y
// estrategias que Brand (los productos pueden quedar sin categoría).
type CategoryUseCase struct {
	svc  *lifecycle.Service[*entity.Category]
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.Category]{
		Kind:       "category",
		Dependents: []lifecycle.DependentSpec{{Kind: "product", FK: "category_id", Nullable: true}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyClearLink, lifecycle.StrategyCascade},
	}, repo, log)
	return &CategoryUseCase{svc: svc, repo: repo}
}

// Create crea una categoría nueva.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	c, err := uc.svc.Create(ctx, &entity.Category{Name: in.Name, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.svc.Update(ctx, id, func(c *entity.Category) error {
		if in.Name != nil {
			c.Name = *in.Name
		}
		c.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Deactivate desactiva la categoría; con productos vivos exige estrategia.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.CategoryResponse, error) {
	c, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Reactivate vuelve la categoría a activa.
func (uc *CategoryUseCase) Reactivate(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ReactivateSwap activa id desactivando currentID.
func (uc *CategoryUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.CategoryResponse, error) {
	c, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría por id.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

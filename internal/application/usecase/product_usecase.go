package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/cache"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// ProductUseCase ciclo de vida de productos. La clave natural es el código
// numérico. Stock no se edita aquí: lo mueven ventas y entradas. Las lecturas
// por id pasan por el cache; toda escritura invalida.
type ProductUseCase struct {
	svc   *lifecycle.Service[*entity.Product]
	repo  repository.ProductRepository
	cache cache.ProductCache
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pc cache.ProductCache, log *logger.Logger) *ProductUseCase {
	if pc == nil {
		pc = cache.Noop{}
	}
	svc := lifecycle.NewService(lifecycle.Config[*entity.Product]{
		Kind: "product",
	}, repo, log)
	return &ProductUseCase{svc: svc, repo: repo, cache: pc}
}

// Create crea un producto nuevo con stock cero.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code <= 0 {
		return nil, fmt.Errorf("código de producto %d: %w", in.Code, domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, fmt.Errorf("precio y costo no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	p, err := uc.svc.Create(ctx, &entity.Product{
		Code:       in.Code,
		Name:       in.Name,
		Price:      in.Price,
		Cost:       in.Cost,
		BrandID:    in.BrandID,
		CategoryID: in.CategoryID,
		ProviderID: in.ProviderID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update actualiza un producto; cambiar el código reevalúa la unicidad.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Code != nil && *in.Code <= 0 {
		return nil, fmt.Errorf("código de producto %d: %w", *in.Code, domain.ErrInvalidInput)
	}
	p, err := uc.svc.Update(ctx, id, func(p *entity.Product) error {
		if in.Code != nil {
			p.Code = *in.Code
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
			}
			p.Price = *in.Price
		}
		if in.Cost != nil {
			if in.Cost.IsNegative() {
				return fmt.Errorf("costo negativo: %w", domain.ErrInvalidInput)
			}
			p.Cost = *in.Cost
		}
		if in.BrandID != nil {
			p.BrandID = in.BrandID
		}
		if in.CategoryID != nil {
			p.CategoryID = in.CategoryID
		}
		if in.ProviderID != nil {
			p.ProviderID = in.ProviderID
		}
		p.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, id)
	return toProductResponse(p), nil
}

// Deactivate desactiva el producto.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.ProductResponse, error) {
	p, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, id)
	return toProductResponse(p), nil
}

// Reactivate vuelve el producto a activo.
func (uc *ProductUseCase) Reactivate(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, id)
	return toProductResponse(p), nil
}

// ReactivateSwap activa id desactivando currentID; invalida ambos.
func (uc *ProductUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.ProductResponse, error) {
	p, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, id)
	uc.cache.Invalidate(ctx, currentID)
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por id, con cache de lectura.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if p, ok := uc.cache.Get(ctx, id); ok {
		return toProductResponse(p), nil
	}
	p, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(ctx, p)
	return toProductResponse(p), nil
}

// List lista productos con paginación (sin cache: el filtro varía).
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		Price:      p.Price,
		Cost:       p.Cost,
		Stock:      p.Stock,
		BrandID:    p.BrandID,
		CategoryID: p.CategoryID,
		ProviderID: p.ProviderID,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

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

// BarTableUseCase ciclo de vida de mesas. La clave natural es numérica: el
// borde ya parseó el número, así que la unicidad compara valores, no strings.
type BarTableUseCase struct {
	svc  *lifecycle.Service[*entity.BarTable]
	repo repository.BarTableRepository
}

// NewBarTableUseCase construye el caso de uso.
func NewBarTableUseCase(repo repository.BarTableRepository, log *logger.Logger) *BarTableUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.BarTable]{
		Kind: "bar_table",
	}, repo, log)
	return &BarTableUseCase{svc: svc, repo: repo}
}

// Create crea una mesa nueva.
func (uc *BarTableUseCase) Create(ctx context.Context, in dto.CreateBarTableRequest) (*dto.BarTableResponse, error) {
	if in.Number <= 0 {
		return nil, fmt.Errorf("número de mesa %d: %w", in.Number, domain.ErrInvalidInput)
	}
	now := time.Now()
	t, err := uc.svc.Create(ctx, &entity.BarTable{
		Number:    in.Number,
		Seats:     in.Seats,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return toBarTableResponse(t), nil
}

// Update actualiza una mesa; cambiar el número reevalúa la unicidad.
func (uc *BarTableUseCase) Update(ctx context.Context, id int64, in dto.UpdateBarTableRequest) (*dto.BarTableResponse, error) {
	if in.Number != nil && *in.Number <= 0 {
		return nil, fmt.Errorf("número de mesa %d: %w", *in.Number, domain.ErrInvalidInput)
	}
	t, err := uc.svc.Update(ctx, id, func(t *entity.BarTable) error {
		if in.Number != nil {
			t.Number = *in.Number
		}
		if in.Seats != nil {
			t.Seats = *in.Seats
		}
		t.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBarTableResponse(t), nil
}

// Deactivate desactiva la mesa.
func (uc *BarTableUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.BarTableResponse, error) {
	t, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toBarTableResponse(t), nil
}

// Reactivate vuelve la mesa a activa.
func (uc *BarTableUseCase) Reactivate(ctx context.Context, id int64) (*dto.BarTableResponse, error) {
	t, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBarTableResponse(t), nil
}

// ReactivateSwap activa id desactivando currentID (mismo número de mesa).
func (uc *BarTableUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.BarTableResponse, error) {
	t, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toBarTableResponse(t), nil
}

// GetByID obtiene una mesa por id.
func (uc *BarTableUseCase) GetByID(ctx context.Context, id int64) (*dto.BarTableResponse, error) {
	t, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBarTableResponse(t), nil
}

// List lista mesas con paginación.
func (uc *BarTableUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.BarTableListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BarTableResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toBarTableResponse(t))
	}
	return &dto.BarTableListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toBarTableResponse(t *entity.BarTable) *dto.BarTableResponse {
	return &dto.BarTableResponse{
		ID:        t.ID,
		Number:    t.Number,
		Seats:     t.Seats,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

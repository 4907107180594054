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

// EmployeeUseCase ciclo de vida de empleados.
type EmployeeUseCase struct {
	svc  *lifecycle.Service[*entity.Employee]
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, log *logger.Logger) *EmployeeUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.Employee]{
		Kind: "employee",
	}, repo, log)
	return &EmployeeUseCase{svc: svc, repo: repo}
}

// Create crea un empleado nuevo.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now()
	e, err := uc.svc.Create(ctx, &entity.Employee{
		Name:      in.Name,
		Document:  in.Document,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Update actualiza un empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.svc.Update(ctx, id, func(e *entity.Employee) error {
		if in.Name != nil {
			e.Name = *in.Name
		}
		if in.Document != nil {
			e.Document = *in.Document
		}
		if in.Phone != nil {
			e.Phone = *in.Phone
		}
		e.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Deactivate desactiva el empleado.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.EmployeeResponse, error) {
	e, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Reactivate vuelve el empleado a activo.
func (uc *EmployeeUseCase) Reactivate(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// ReactivateSwap activa id desactivando currentID.
func (uc *EmployeeUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.EmployeeResponse, error) {
	e, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID obtiene un empleado por id.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Document:  e.Document,
		Phone:     e.Phone,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

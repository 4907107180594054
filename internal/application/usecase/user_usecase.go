package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// UserUseCase ciclo de vida de usuarios. El administrador nunca se
// desactiva: política fija que corta antes de evaluar dependientes.
type UserUseCase struct {
	svc  *lifecycle.Service[*entity.User]
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	svc := lifecycle.NewService(lifecycle.Config[*entity.User]{
		Kind:            "user",
		Protected:       func(u *entity.User) bool { return u.Role == entity.RoleAdmin },
		ProtectedReason: "el usuario administrador no puede desactivarse",
	}, repo, log)
	return &UserUseCase{svc: svc, repo: repo}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleCashier, entity.RoleWaiter:
		return true
	}
	return false
}

// Create crea un usuario nuevo; la contraseña se persiste como hash bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !validRole(in.Role) {
		return nil, fmt.Errorf("rol %q: %w", in.Role, domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	now := time.Now()
	u, err := uc.svc.Create(ctx, &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Update actualiza un usuario; cambiar el username reevalúa la unicidad.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Role != nil && !validRole(*in.Role) {
		return nil, fmt.Errorf("rol %q: %w", *in.Role, domain.ErrInvalidInput)
	}
	var hash string
	if in.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		hash = string(h)
	}
	u, err := uc.svc.Update(ctx, id, func(u *entity.User) error {
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Password != nil {
			u.PasswordHash = hash
		}
		if in.FullName != nil {
			u.FullName = *in.FullName
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		u.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Deactivate desactiva el usuario (el administrador está protegido).
func (uc *UserUseCase) Deactivate(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*dto.UserResponse, error) {
	u, err := uc.svc.Deactivate(ctx, id, strategy)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Reactivate vuelve el usuario a activo.
func (uc *UserUseCase) Reactivate(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.svc.Reactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ReactivateSwap activa id desactivando currentID.
func (uc *UserUseCase) ReactivateSwap(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*dto.UserResponse, error) {
	u, err := uc.svc.ReactivateSwap(ctx, id, currentID, strategy)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByID obtiene un usuario por id.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/domain"
)

// writeError traduce un error de dominio a su respuesta HTTP. Los errores
// tipados llevan el contexto que la llamada de seguimiento necesita: el id en
// colisión para conflictos, los conteos y estrategias para bloqueos por
// dependientes.
func writeError(c *fiber.Ctx, err error) error {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		existingID := conflict.ExistingID
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:       conflict.Code(),
			Message:    conflict.Error(),
			ExistingID: &existingID,
		})
	}

	var dependency *domain.DependencyError
	if errors.As(err, &dependency) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:       "HAS_ACTIVE_DEPENDENTS",
			Message:    dependency.Error(),
			Counts:     dependency.Counts,
			Strategies: dependency.Strategies,
		})
	}

	var alreadyActive *domain.AlreadyActiveError
	if errors.As(err, &alreadyActive) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "ALREADY_ACTIVE",
			Message: alreadyActive.Error(),
		})
	}

	var protected *domain.ProtectedError
	if errors.As(err, &protected) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "PROTECTED",
			Message: protected.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidSwap):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_SWAP", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

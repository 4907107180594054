package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/application/usecase"
)

// StockEntryHandler maneja las peticiones HTTP para entradas de mercancía.
type StockEntryHandler struct {
	uc *usecase.StockEntryUseCase
}

// NewStockEntryHandler construye el handler.
func NewStockEntryHandler(uc *usecase.StockEntryUseCase) *StockEntryHandler {
	return &StockEntryHandler{uc: uc}
}

// Create registra una entrada de mercancía.
func (h *StockEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las entradas más recientes.
func (h *StockEntryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

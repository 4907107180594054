package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
)

// LifecycleOps operaciones de un caso de uso de catálogo. Los nueve tipos del
// catálogo exponen exactamente esta superficie, así que los handlers HTTP se
// generan una sola vez en lugar de repetirse por entidad.
type LifecycleOps[C, U, R, L any] struct {
	Create         func(ctx context.Context, in C) (*R, error)
	Update         func(ctx context.Context, id int64, in U) (*R, error)
	Deactivate     func(ctx context.Context, id int64, strategy *lifecycle.Strategy) (*R, error)
	Reactivate     func(ctx context.Context, id int64) (*R, error)
	ReactivateSwap func(ctx context.Context, id, currentID int64, strategy *lifecycle.Strategy) (*R, error)
	GetByID        func(ctx context.Context, id int64) (*R, error)
	List           func(ctx context.Context, onlyActive bool, page dto.PageRequest) (*L, error)
}

// RegisterLifecycleRoutes monta las rutas estándar de una entidad de catálogo:
//
//	POST   /            crear
//	GET    /            listar (?only_active, ?limit, ?offset)
//	GET    /:id         obtener
//	PUT    /:id         actualizar
//	POST   /:id/deactivate       desactivar (estrategia opcional en el cuerpo)
//	POST   /:id/reactivate       reactivar con el mismo id
//	POST   /:id/reactivate-swap  reactivar desplazando al activo actual
func RegisterLifecycleRoutes[C, U, R, L any](g fiber.Router, ops LifecycleOps[C, U, R, L]) {
	g.Post("/", createHandler(ops))
	g.Get("/", listHandler(ops))
	g.Get("/:id", getHandler(ops))
	g.Put("/:id", updateHandler(ops))
	g.Post("/:id/deactivate", deactivateHandler(ops))
	g.Post("/:id/reactivate", reactivateHandler(ops))
	g.Post("/:id/reactivate-swap", reactivateSwapHandler(ops))
}

func createHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in C
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := ops.Create(c.UserContext(), in)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func updateHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		var in U
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := ops.Update(c.UserContext(), id, in)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func deactivateHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		// El cuerpo es opcional: sin estrategia, los dependientes vivos bloquean.
		var in dto.DeactivateRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
			}
		}
		strategy, ok := parseStrategy(c, in.Strategy)
		if !ok {
			return nil
		}
		out, err := ops.Deactivate(c.UserContext(), id, strategy)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func reactivateHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		out, err := ops.Reactivate(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func reactivateSwapHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		var in dto.ReactivateSwapRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if in.CurrentID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "current_id es requerido"})
		}
		strategy, ok := parseStrategy(c, in.Strategy)
		if !ok {
			return nil
		}
		out, err := ops.ReactivateSwap(c.UserContext(), id, in.CurrentID, strategy)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func getHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		out, err := ops.GetByID(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func listHandler[C, U, R, L any](ops LifecycleOps[C, U, R, L]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := dto.PageRequest{
			Limit:  c.QueryInt("limit", 20),
			Offset: c.QueryInt("offset", 0),
		}
		onlyActive := c.QueryBool("only_active", false)
		out, err := ops.List(c.UserContext(), onlyActive, page)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

// pathID lee el :id de la ruta. Si no es un entero positivo escribe el 400 y
// devuelve ok=false; el handler solo debe retornar.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id debe ser un entero positivo"})
		return 0, false
	}
	return int64(id), true
}

// parseStrategy valida la estrategia del cuerpo. Cadena vacía significa sin
// estrategia (nil): el núcleo decide si bloquear. Si la cadena es inválida
// escribe el 400 y devuelve ok=false.
func parseStrategy(c *fiber.Ctx, raw string) (*lifecycle.Strategy, bool) {
	if raw == "" {
		return nil, true
	}
	s, err := lifecycle.ParseStrategy(raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STRATEGY", Message: err.Error()})
		return nil, false
	}
	return &s, true
}

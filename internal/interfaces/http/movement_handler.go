package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/movements"
)

// MovementHandler maneja el registro y consulta de movimientos de herramientas.
type MovementHandler struct {
	uc *movements.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movements.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register registra un lote de entradas o salidas. El lote es atómico:
// si una línea falla no se aplica ninguna.
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista movimientos. Un admin ve todos; un worker solo los suyos.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), GetRole(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

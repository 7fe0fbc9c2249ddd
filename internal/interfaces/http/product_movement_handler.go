package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/movements"
)

// ProductMovementHandler maneja el registro y consulta de movimientos de productos.
type ProductMovementHandler struct {
	uc *movements.ProductMovementUseCase
}

// NewProductMovementHandler construye el handler.
func NewProductMovementHandler(uc *movements.ProductMovementUseCase) *ProductMovementHandler {
	return &ProductMovementHandler{uc: uc}
}

// Register registra una entrada, salida o ajuste de producto.
// El actor sale del token; el campo nombreUsuario del body se ignora.
func (h *ProductMovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductMovementRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todos los movimientos de productos.
func (h *ProductMovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

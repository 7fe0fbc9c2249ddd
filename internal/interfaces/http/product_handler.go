package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/products"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc *products.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *products.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List lista todos los productos.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza campos de un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto. Falla con 409 si aún tiene existencias.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

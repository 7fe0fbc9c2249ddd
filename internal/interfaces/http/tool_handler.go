package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/tools"
)

// ToolHandler maneja las peticiones HTTP para herramientas (protegido).
type ToolHandler struct {
	uc *tools.ToolUseCase
}

// NewToolHandler construye el handler.
func NewToolHandler(uc *tools.ToolUseCase) *ToolHandler {
	return &ToolHandler{uc: uc}
}

// Create crea una herramienta.
func (h *ToolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateToolRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una herramienta por ID.
func (h *ToolHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// GetByCode resuelve una herramienta por barcode o QR escaneado.
func (h *ToolHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.uc.GetByCode(code)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List lista todas las herramientas.
func (h *ToolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza campos de una herramienta.
func (h *ToolHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateToolRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una herramienta.
func (h *ToolHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/clients"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
)

// ClientHandler maneja las peticiones HTTP para clientes (protegido).
type ClientHandler struct {
	uc *clients.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create crea un cliente.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un cliente por ID.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List lista todos los clientes.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza campos de un cliente.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un cliente.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

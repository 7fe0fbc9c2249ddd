package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/tools"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/barcode"
)

// CodeHandler maneja la generación y renderizado de códigos de escaneo.
type CodeHandler struct {
	uc       *tools.CodeUseCase
	renderer *barcode.Renderer
}

// NewCodeHandler construye el handler.
func NewCodeHandler(uc *tools.CodeUseCase, renderer *barcode.Renderer) *CodeHandler {
	return &CodeHandler{uc: uc, renderer: renderer}
}

// Get devuelve los códigos actuales de una herramienta.
func (h *CodeHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Generate genera barcode y QR para una herramienta. Idempotente: si ya
// existen los devuelve sin regenerar.
func (h *CodeHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GenerateBulk genera códigos para todas las herramientas pendientes.
// Devuelve un resultado por ítem; las colisiones se omiten sin abortar.
func (h *CodeHandler) GenerateBulk(c *fiber.Ctx) error {
	out, err := h.uc.GenerateBulk()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// RenderBarcode devuelve el PNG del código de barras de una herramienta.
// Público: las etiquetas se imprimen desde dispositivos sin sesión.
func (h *CodeHandler) RenderBarcode(c *fiber.Ctx) error {
	tool, err := h.uc.ToolForRender(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if tool.Barcode == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_CODE", Message: "la herramienta no tiene barcode generado"})
	}
	img, err := h.renderer.RenderBarcode(tool.Barcode)
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}

// RenderQR devuelve el PNG del código QR de una herramienta. Público.
func (h *CodeHandler) RenderQR(c *fiber.Ctx) error {
	tool, err := h.uc.ToolForRender(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if tool.QRCode == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_CODE", Message: "la herramienta no tiene QR generado"})
	}
	img, err := h.renderer.RenderQR(tool.QRCode)
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/quotations"
)

// QuotationHandler maneja las peticiones HTTP para cotizaciones (protegido).
type QuotationHandler struct {
	uc *quotations.QuotationUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *quotations.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create crea una cotización con numeración automática de la serie COT
// (o el número explícito del body, si no está tomado).
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una cotización por ID.
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List lista todas las cotizaciones.
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// PDF genera y descarga el documento PDF de la cotización.
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.GeneratePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

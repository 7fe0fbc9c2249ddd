package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/analytics"
)

// DashboardHandler expone los agregados de la pantalla de inicio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve conteos, existencias totales y movimientos recientes.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/excel"
)

// ReportHandler genera reportes descargables del inventario (solo admin).
type ReportHandler struct {
	exporter *excel.InventoryExporter
}

// NewReportHandler construye el handler.
func NewReportHandler(exporter *excel.InventoryExporter) *ReportHandler {
	return &ReportHandler{exporter: exporter}
}

// Inventory descarga el inventario completo en XLSX.
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	data, err := h.exporter.Export()
	if err != nil {
		return mapError(c, err)
	}
	filename := "inventario-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateToolRequest body para POST /herramientas.
// Cantidad acepta número o string libre ("3,5", "1/4"); se normaliza antes de guardar.
type CreateToolRequest struct {
	Name        string          `json:"nombre" validate:"required"`
	Brand       string          `json:"marca,omitempty"`
	Model       string          `json:"modelo,omitempty"`
	Serial      string          `json:"serie,omitempty"`
	Category    string          `json:"categoria" validate:"required"`
	UnitMeasure string          `json:"unidad,omitempty"`
	Quantity    json.RawMessage `json:"cantidad" validate:"required"`
	State       string          `json:"estado,omitempty" validate:"omitempty,oneof=disponible prestada"`
}

// UpdateToolRequest body para PUT /herramientas/:id (campos opcionales).
type UpdateToolRequest struct {
	Name        *string         `json:"nombre,omitempty"`
	Brand       *string         `json:"marca,omitempty"`
	Model       *string         `json:"modelo,omitempty"`
	Serial      *string         `json:"serie,omitempty"`
	Category    *string         `json:"categoria,omitempty"`
	UnitMeasure *string         `json:"unidad,omitempty"`
	Quantity    json.RawMessage `json:"cantidad,omitempty"`
	State       *string         `json:"estado,omitempty" validate:"omitempty,oneof=disponible prestada"`
}

// ToolResponse herramienta para respuestas.
type ToolResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Brand       string          `json:"marca,omitempty"`
	Model       string          `json:"modelo,omitempty"`
	Serial      string          `json:"serie,omitempty"`
	Category    string          `json:"categoria"`
	UnitMeasure string          `json:"unidad,omitempty"`
	Quantity    decimal.Decimal `json:"cantidad"`
	State       string          `json:"estado"`
	Barcode     string          `json:"barcode,omitempty"`
	QRCode      string          `json:"qrCode,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

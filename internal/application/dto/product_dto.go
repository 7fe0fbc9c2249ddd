package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /productos.
type CreateProductRequest struct {
	Name        string          `json:"nombre" validate:"required"`
	SKU         string          `json:"sku" validate:"required"`
	Category    string          `json:"categoria,omitempty"`
	UnitMeasure string          `json:"unidad,omitempty"`
	Quantity    decimal.Decimal `json:"cantidad"`
	Barcode     string          `json:"barcode,omitempty"`
}

// UpdateProductRequest body para PUT /productos/:id (campos opcionales).
type UpdateProductRequest struct {
	Name        *string `json:"nombre,omitempty"`
	Category    *string `json:"categoria,omitempty"`
	UnitMeasure *string `json:"unidad,omitempty"`
	Barcode     *string `json:"barcode,omitempty"`
}

// ProductResponse producto para respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"nombre"`
	SKU           string          `json:"sku"`
	Category      string          `json:"categoria,omitempty"`
	UnitMeasure   string          `json:"unidad,omitempty"`
	Quantity      decimal.Decimal `json:"cantidad"`
	Barcode       string          `json:"barcode,omitempty"`
	LastEntryDate *time.Time      `json:"fechaUltimaEntrada,omitempty"`
	LastExitDate  *time.Time      `json:"fechaUltimaSalida,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

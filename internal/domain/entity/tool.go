package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Tool.
const (
	ToolStateAvailable = "disponible"
	ToolStateLoaned    = "prestada"
)

// Categorías válidas para Tool (conjunto cerrado).
const (
	ToolCategoryManual     = "manual"
	ToolCategoryElectrica  = "electrica"
	ToolCategoryMedicion   = "medicion"
	ToolCategorySeguridad  = "seguridad"
	ToolCategoryConsumible = "consumible"
)

// ValidToolCategory indica si la categoría pertenece al conjunto cerrado.
func ValidToolCategory(c string) bool {
	switch c {
	case ToolCategoryManual, ToolCategoryElectrica, ToolCategoryMedicion,
		ToolCategorySeguridad, ToolCategoryConsumible:
		return true
	}
	return false
}

// Tool representa una herramienta del inventario.
// Quantity es decimal (admite fracciones) y nunca es negativa: las salidas se
// aplican con decremento condicional en la capa de persistencia.
type Tool struct {
	ID          string
	Name        string
	Brand       string
	Model       string
	Serial      string
	Category    string // conjunto cerrado, ver ValidToolCategory
	UnitMeasure string
	Quantity    decimal.Decimal
	State       string // disponible | prestada
	Barcode     string // código corto de 8 hex mayúsculas, único, opcional
	QRCode      string // código con prefijo "INV-", único, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

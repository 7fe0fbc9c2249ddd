package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (SKU) del inventario.
// LastEntryDate y LastExitDate se actualizan desde el registro de movimientos.
type Product struct {
	ID            string
	Name          string
	SKU           string // único
	Category      string
	UnitMeasure   string
	Quantity      decimal.Decimal
	Barcode       string // opcional, único
	LastEntryDate *time.Time
	LastExitDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

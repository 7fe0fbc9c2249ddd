package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de productos. "ajuste" suma como una entrada.
const (
	ProductMovementEntry  = "entrada"
	ProductMovementExit   = "salida"
	ProductMovementAdjust = "ajuste"
)

// ProductMovement es el asiento de auditoría de un movimiento de producto
// (un solo producto por movimiento). Append-only.
type ProductMovement struct {
	ID          string
	Kind        string // entrada | salida | ajuste
	ProductID   string
	ProductName string // snapshot
	ProductSKU  string // snapshot
	Quantity    decimal.Decimal
	ActorID     string
	ActorName   string
	Note        string
	Reference   string // número de factura u otra referencia externa
	CreatedAt   time.Time
}

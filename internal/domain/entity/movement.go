package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de herramientas.
const (
	MovementKindEntry = "entrada"
	MovementKindExit  = "salida"
)

// MovementLine es una línea del lote: herramienta afectada y cantidad.
// ToolName y ToolBarcode son snapshot al momento del registro (auditoría inmutable).
type MovementLine struct {
	ToolID      string
	ToolName    string
	ToolBarcode string
	Quantity    decimal.Decimal // entero positivo
}

// Movement es el asiento de auditoría de un movimiento de herramientas.
// Append-only: no existe actualización ni borrado.
type Movement struct {
	ID        string
	Kind      string // entrada | salida
	Lines     []MovementLine
	ActorID   string
	ActorName string // snapshot del nombre del usuario
	Note      string
	Project   string // "obra"
	PhotoRef  string // URL de foto, opcional
	CreatedAt time.Time
}

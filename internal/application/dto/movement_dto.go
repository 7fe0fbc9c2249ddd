package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementLineRequest una línea del lote: herramienta por id o por código de escaneo.
type MovementLineRequest struct {
	ToolID   string `json:"herramienta,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
	Quantity int64  `json:"cantidad" validate:"required,gt=0"`
}

// RegisterMovementRequest body para POST /movimientos.
type RegisterMovementRequest struct {
	Lines    []MovementLineRequest `json:"herramientas" validate:"required,min=1,dive"`
	Kind     string                `json:"tipo" validate:"required,oneof=entrada salida"`
	Note     string                `json:"nota,omitempty"`
	Project  string                `json:"obra,omitempty"`
	PhotoRef string                `json:"foto,omitempty" validate:"omitempty,url"`
}

// MovementLineResponse línea con snapshot de la herramienta.
type MovementLineResponse struct {
	ToolID      string          `json:"herramienta"`
	ToolName    string          `json:"nombreHerramienta"`
	ToolBarcode string          `json:"barcode,omitempty"`
	Quantity    decimal.Decimal `json:"cantidad"`
}

// MovementResponse movimiento con detalles expandidos para el cliente.
type MovementResponse struct {
	ID        string                 `json:"id"`
	Kind      string                 `json:"tipo"`
	Lines     []MovementLineResponse `json:"herramientas"`
	ActorID   string                 `json:"usuario"`
	ActorName string                 `json:"nombreUsuario"`
	Note      string                 `json:"nota,omitempty"`
	Project   string                 `json:"obra,omitempty"`
	PhotoRef  string                 `json:"foto,omitempty"`
	CreatedAt time.Time              `json:"fecha"`
}

// RegisterProductMovementRequest body para POST /movimientos-producto.
// ActorName se acepta por compatibilidad con clientes antiguos pero se ignora:
// el actor sale siempre del token autenticado.
type RegisterProductMovementRequest struct {
	ProductID string `json:"productoId,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
	Kind      string `json:"tipo" validate:"required,oneof=entrada salida ajuste"`
	Quantity  int64  `json:"cantidad" validate:"required,gt=0"`
	ActorName string `json:"nombreUsuario,omitempty"`
	Note      string `json:"nota,omitempty"`
	Reference string `json:"referencia,omitempty"`
}

// ProductMovementResponse movimiento de producto para respuestas.
type ProductMovementResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"tipo"`
	ProductID   string          `json:"producto"`
	ProductName string          `json:"nombreProducto"`
	ProductSKU  string          `json:"sku,omitempty"`
	Quantity    decimal.Decimal `json:"cantidad"`
	ActorID     string          `json:"usuario"`
	ActorName   string          `json:"nombreUsuario"`
	Note        string          `json:"nota,omitempty"`
	Reference   string          `json:"referencia,omitempty"`
	CreatedAt   time.Time       `json:"fecha"`
}

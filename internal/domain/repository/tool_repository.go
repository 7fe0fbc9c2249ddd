package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

// ToolRepository puerto de persistencia para herramientas.
type ToolRepository interface {
	Create(tool *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	// GetByCode busca por código de escaneo (barcode o QR indistintamente).
	GetByCode(code string) (*entity.Tool, error)
	List() ([]*entity.Tool, error)
	// ListWithoutCodes devuelve las herramientas sin barcode o sin QR (para generación masiva).
	ListWithoutCodes() ([]*entity.Tool, error)
	Update(tool *entity.Tool) error
	UpdateCodes(id, barcode, qrCode string) error
	// AddQuantity incrementa la cantidad en delta (entradas).
	AddQuantity(id string, delta decimal.Decimal) error
	// SubtractIfAvailable aplica el decremento condicional atómico:
	// UPDATE ... SET quantity = quantity - n WHERE id = $1 AND quantity >= n.
	// Devuelve false (sin error) cuando el stock es insuficiente.
	SubtractIfAvailable(id string, qty decimal.Decimal) (bool, error)
	Delete(id string) error
}

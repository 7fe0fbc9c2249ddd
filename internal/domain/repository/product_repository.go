package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByBarcode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	AddQuantity(id string, delta decimal.Decimal) error
	// SubtractIfAvailable decremento condicional atómico; false = stock insuficiente.
	SubtractIfAvailable(id string, qty decimal.Decimal) (bool, error)
	// SetLastEntryDate / SetLastExitDate actualizan las marcas de último movimiento.
	SetLastEntryDate(id string, at time.Time) error
	SetLastExitDate(id string, at time.Time) error
	Delete(id string) error
}

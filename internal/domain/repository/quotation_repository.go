package repository

import "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"

// QuotationRepository puerto de persistencia para cotizaciones.
type QuotationRepository interface {
	Create(quotation *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	GetByNumber(number string) (*entity.Quotation, error)
	List() ([]*entity.Quotation, error)
	// NextNumber devuelve el siguiente consecutivo de la serie (secuencia de BD).
	NextNumber() (int64, error)
}

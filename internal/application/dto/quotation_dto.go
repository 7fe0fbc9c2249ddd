package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationLineRequest línea de cotización.
type QuotationLineRequest struct {
	Description string          `json:"descripcion" validate:"required"`
	Quantity    decimal.Decimal `json:"cantidad" validate:"required"`
	UnitPrice   decimal.Decimal `json:"precioUnitario" validate:"required"`
}

// CreateQuotationRequest body para POST /cotizaciones.
// Number vacío = consecutivo automático de la serie COT.
type CreateQuotationRequest struct {
	Number       string                 `json:"numero,omitempty"`
	ClientID     string                 `json:"cliente" validate:"required"`
	Lines        []QuotationLineRequest `json:"items" validate:"required,min=1,dive"`
	ValidityDays int                    `json:"diasValidez,omitempty" validate:"omitempty,gt=0"`
	Note         string                 `json:"nota,omitempty"`
}

// QuotationLineResponse línea con subtotal calculado.
type QuotationLineResponse struct {
	Description string          `json:"descripcion"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuotationResponse cotización completa.
type QuotationResponse struct {
	ID             string                  `json:"id"`
	Number         string                  `json:"numero"`
	ClientID       string                  `json:"cliente"`
	ClientName     string                  `json:"nombreCliente"`
	ClientDocument string                  `json:"documentoCliente,omitempty"`
	Lines          []QuotationLineResponse `json:"items"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	IGV            decimal.Decimal         `json:"igv"`
	Total          decimal.Decimal         `json:"total"`
	ValidityDays   int                     `json:"diasValidez"`
	Note           string                  `json:"nota,omitempty"`
	CreatedBy      string                  `json:"creadoPor"`
	CreatedAt      time.Time               `json:"fecha"`
}

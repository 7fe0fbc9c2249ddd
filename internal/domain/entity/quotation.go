package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IGVRate tasa de IGV aplicada a las cotizaciones (Perú, 18%).
var IGVRate = decimal.NewFromFloat(0.18)

// QuotationLine es una línea de cotización.
type QuotationLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // Quantity * UnitPrice
}

// Quotation representa una cotización numerada para un cliente.
// Number es único (serie "COT-000001").
type Quotation struct {
	ID             string
	Number         string
	ClientID       string
	ClientName     string // snapshot
	ClientDocument string // snapshot
	Lines          []QuotationLine
	Subtotal       decimal.Decimal
	IGV            decimal.Decimal
	Total          decimal.Decimal
	ValidityDays   int
	Note           string
	CreatedBy      string
	CreatedAt      time.Time
}

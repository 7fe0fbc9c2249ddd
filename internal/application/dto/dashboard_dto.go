package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados para la pantalla de inicio.
type DashboardResponse struct {
	Tools             int                `json:"herramientas"`
	Products          int                `json:"productos"`
	Clients           int                `json:"clientes"`
	Quotations        int                `json:"cotizaciones"`
	TotalToolStock    decimal.Decimal    `json:"stockHerramientas"`
	TotalProductStock decimal.Decimal    `json:"stockProductos"`
	RecentMovements   []MovementResponse `json:"movimientosRecientes"`
}

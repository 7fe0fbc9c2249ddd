package repository

import "github.com/shopspring/decimal"

// DashboardSummary agregados para el tablero de inicio.
type DashboardSummary struct {
	Tools             int
	Products          int
	Clients           int
	Quotations        int
	TotalToolStock    decimal.Decimal
	TotalProductStock decimal.Decimal
}

// DashboardRepository consultas de agregación de solo lectura.
type DashboardRepository interface {
	Summary() (*DashboardSummary, error)
}

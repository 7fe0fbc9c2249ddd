package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación de solo lectura para el tablero.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de consultas del tablero.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// Summary calcula los conteos y existencias totales en una sola consulta.
func (r *DashboardRepo) Summary() (*repository.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM tools),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM quotations),
			(SELECT COALESCE(SUM(quantity), 0) FROM tools),
			(SELECT COALESCE(SUM(quantity), 0) FROM products)`

	var s repository.DashboardSummary
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.Tools, &s.Products, &s.Clients, &s.Quotations,
		&s.TotalToolStock, &s.TotalProductStock,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

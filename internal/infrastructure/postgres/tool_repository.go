package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

var _ repository.ToolRepository = (*ToolRepo)(nil)

const toolColumns = `id, name, brand, model, serial, category, unit_measure, quantity, state, COALESCE(barcode, ''), COALESCE(qr_code, ''), created_at, updated_at`

// ToolRepo implementación del puerto ToolRepository sobre PostgreSQL (usable con pool o tx).
type ToolRepo struct {
	q Querier
}

// NewToolRepository construye el adaptador. Pasar pool o tx (Querier).
func NewToolRepository(q Querier) *ToolRepo {
	return &ToolRepo{q: q}
}

// Create persiste una nueva herramienta.
func (r *ToolRepo) Create(tool *entity.Tool) error {
	query := `
		INSERT INTO tools (id, name, brand, model, serial, category, unit_measure, quantity, state, barcode, qr_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		tool.ID, tool.Name, tool.Brand, tool.Model, tool.Serial, tool.Category,
		tool.UnitMeasure, tool.Quantity, tool.State, tool.Barcode, tool.QRCode,
		tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tool: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	return r.getOne(`SELECT `+toolColumns+` FROM tools WHERE id = $1`, id)
}

// GetByCode obtiene una herramienta por código de escaneo (barcode o QR).
func (r *ToolRepo) GetByCode(code string) (*entity.Tool, error) {
	return r.getOne(`SELECT `+toolColumns+` FROM tools WHERE barcode = $1 OR qr_code = $1`, code)
}

func (r *ToolRepo) getOne(query string, args ...any) (*entity.Tool, error) {
	var t entity.Tool
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&t.ID, &t.Name, &t.Brand, &t.Model, &t.Serial, &t.Category, &t.UnitMeasure,
		&t.Quantity, &t.State, &t.Barcode, &t.QRCode, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return &t, nil
}

// List lista todas las herramientas, más recientes primero.
func (r *ToolRepo) List() ([]*entity.Tool, error) {
	return r.list(`SELECT ` + toolColumns + ` FROM tools ORDER BY created_at DESC`)
}

// ListWithoutCodes devuelve las herramientas sin barcode o sin QR.
func (r *ToolRepo) ListWithoutCodes() ([]*entity.Tool, error) {
	return r.list(`SELECT ` + toolColumns + ` FROM tools WHERE barcode IS NULL OR qr_code IS NULL ORDER BY created_at`)
}

func (r *ToolRepo) list(query string) ([]*entity.Tool, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tool
	for rows.Next() {
		var t entity.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Brand, &t.Model, &t.Serial, &t.Category, &t.UnitMeasure,
			&t.Quantity, &t.State, &t.Barcode, &t.QRCode, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza los atributos y la cantidad de una herramienta.
func (r *ToolRepo) Update(tool *entity.Tool) error {
	query := `
		UPDATE tools SET name = $2, brand = $3, model = $4, serial = $5, category = $6,
			unit_measure = $7, quantity = $8, state = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tool.ID, tool.Name, tool.Brand, tool.Model, tool.Serial, tool.Category,
		tool.UnitMeasure, tool.Quantity, tool.State, tool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	return nil
}

// UpdateCodes fija los códigos de escaneo de una herramienta.
func (r *ToolRepo) UpdateCodes(id, barcode, qrCode string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tools SET barcode = NULLIF($2, ''), qr_code = NULLIF($3, ''), updated_at = now() WHERE id = $1`,
		id, barcode, qrCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeCollision
		}
		return fmt.Errorf("update tool codes: %w", err)
	}
	return nil
}

// AddQuantity incrementa la cantidad en delta.
func (r *ToolRepo) AddQuantity(id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE tools SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("add tool quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SubtractIfAvailable decremento condicional atómico: cero filas afectadas
// significa stock insuficiente, nunca se escribe una cantidad negativa.
func (r *ToolRepo) SubtractIfAvailable(id string, qty decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE tools SET quantity = quantity - $2, updated_at = now() WHERE id = $1 AND quantity >= $2`,
		id, qty,
	)
	if err != nil {
		return false, fmt.Errorf("subtract tool quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una herramienta por ID.
func (r *ToolRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos de herramientas
// (append-only) sobre PostgreSQL. Usable con pool o tx.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el asiento y sus líneas. Debe llamarse dentro de la misma
// transacción que las mutaciones de stock del lote.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO movements (id, kind, actor_id, actor_name, note, project, photo_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		movement.ID, movement.Kind, movement.ActorID, movement.ActorName,
		movement.Note, movement.Project, movement.PhotoRef, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	for _, line := range movement.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO movement_lines (movement_id, tool_id, tool_name, tool_barcode, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			movement.ID, line.ToolID, line.ToolName, line.ToolBarcode, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert movement line: %w", err)
		}
	}
	return nil
}

// ListAll devuelve todos los movimientos con sus líneas, más recientes primero.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	return r.listWhere("", nil, 0)
}

// ListByActor devuelve los movimientos de un actor, más recientes primero.
func (r *MovementRepo) ListByActor(actorID string) ([]*entity.Movement, error) {
	return r.listWhere("WHERE m.actor_id = $1", []any{actorID}, 0)
}

// ListRecent devuelve los últimos n movimientos.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	return r.listWhere("", nil, limit)
}

// listWhere arma la consulta con join a líneas y agrupa en Go. El orden
// (created_at DESC, id) mantiene juntas las líneas de cada movimiento.
func (r *MovementRepo) listWhere(where string, args []any, limit int) ([]*entity.Movement, error) {
	query := fmt.Sprintf(`
		SELECT m.id, m.kind, m.actor_id, m.actor_name, m.note, m.project, m.photo_ref, m.created_at,
			l.tool_id, l.tool_name, l.tool_barcode, l.quantity
		FROM movements m
		JOIN movement_lines l ON l.movement_id = m.id
		%s
		ORDER BY m.created_at DESC, m.id, l.id`, where)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	var current *entity.Movement
	for rows.Next() {
		var (
			m    entity.Movement
			line entity.MovementLine
		)
		if err := rows.Scan(&m.ID, &m.Kind, &m.ActorID, &m.ActorName, &m.Note, &m.Project, &m.PhotoRef, &m.CreatedAt,
			&line.ToolID, &line.ToolName, &line.ToolBarcode, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if current == nil || current.ID != m.ID {
			if limit > 0 && len(list) == limit {
				break
			}
			mm := m
			current = &mm
			list = append(list, current)
		}
		current.Lines = append(current.Lines, line)
	}
	return list, rows.Err()
}

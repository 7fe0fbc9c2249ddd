package postgres

import (
	"context"
	"fmt"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

var _ repository.ProductMovementRepository = (*ProductMovementRepo)(nil)

// ProductMovementRepo implementación del libro de movimientos de productos
// (append-only) sobre PostgreSQL. Usable con pool o tx.
type ProductMovementRepo struct {
	q Querier
}

// NewProductMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductMovementRepository(q Querier) *ProductMovementRepo {
	return &ProductMovementRepo{q: q}
}

// Create persiste un movimiento de producto.
func (r *ProductMovementRepo) Create(movement *entity.ProductMovement) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO product_movements (id, kind, product_id, product_name, product_sku, quantity, actor_id, actor_name, note, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		movement.ID, movement.Kind, movement.ProductID, movement.ProductName, movement.ProductSKU,
		movement.Quantity, movement.ActorID, movement.ActorName, movement.Note, movement.Reference,
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product movement: %w", err)
	}
	return nil
}

// ListAll devuelve todos los movimientos de productos, más recientes primero.
func (r *ProductMovementRepo) ListAll() ([]*entity.ProductMovement, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, kind, product_id, product_name, product_sku, quantity, actor_id, actor_name, note, reference, created_at
		FROM product_movements ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list product movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductMovement
	for rows.Next() {
		var m entity.ProductMovement
		if err := rows.Scan(&m.ID, &m.Kind, &m.ProductID, &m.ProductName, &m.ProductSKU,
			&m.Quantity, &m.ActorID, &m.ActorName, &m.Note, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

package repository

import "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"

// MovementRepository puerto de persistencia para movimientos de herramientas.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListAll devuelve todos los movimientos, más recientes primero.
	ListAll() ([]*entity.Movement, error)
	// ListByActor devuelve los movimientos de un actor, más recientes primero.
	ListByActor(actorID string) ([]*entity.Movement, error)
	// ListRecent devuelve los últimos n movimientos (dashboard).
	ListRecent(limit int) ([]*entity.Movement, error)
}

// ProductMovementRepository puerto de persistencia para movimientos de productos.
type ProductMovementRepository interface {
	Create(movement *entity.ProductMovement) error
	ListAll() ([]*entity.ProductMovement, error)
}

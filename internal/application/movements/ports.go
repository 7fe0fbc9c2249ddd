package movements

import (
	"context"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el lote completo de un
// movimiento se aplica todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		toolRepo repository.ToolRepository,
		movRepo repository.MovementRepository,
	) error) error

	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.ProductMovementRepository,
	) error) error
}

package movements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/pkg/metrics"
)

// ProductMovementUseCase registra y lista movimientos de productos (un solo
// producto por movimiento; "ajuste" suma como una entrada). El actor sale del
// token autenticado: el nombreUsuario del body se ignora.
type ProductMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.ProductMovementRepository
	userRepo repository.UserRepository
}

// NewProductMovementUseCase construye el caso de uso.
func NewProductMovementUseCase(txRunner TxRunner, movRepo repository.ProductMovementRepository, userRepo repository.UserRepository) *ProductMovementUseCase {
	return &ProductMovementUseCase{txRunner: txRunner, movRepo: movRepo, userRepo: userRepo}
}

// Register registra un movimiento de producto y actualiza la marca de última
// entrada o última salida según el tipo.
func (uc *ProductMovementUseCase) Register(ctx context.Context, actorID string, in dto.RegisterProductMovementRequest) (*dto.ProductMovementResponse, error) {
	switch in.Kind {
	case entity.ProductMovementEntry, entity.ProductMovementExit, entity.ProductMovementAdjust:
	default:
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Kind)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if in.ProductID == "" && in.Barcode == "" {
		return nil, fmt.Errorf("%w: se requiere productoId o barcode", domain.ErrInvalidInput)
	}

	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	qty := decimal.NewFromInt(in.Quantity)
	movement := &entity.ProductMovement{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Quantity:  qty,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Note:      in.Note,
		Reference: in.Reference,
		CreatedAt: now,
	}

	err = uc.txRunner.RunProduct(ctx, func(productRepo repository.ProductRepository, movRepo repository.ProductMovementRepository) error {
		product, err := resolveProduct(productRepo, in)
		if err != nil {
			return err
		}
		switch in.Kind {
		case entity.ProductMovementExit:
			ok, err := productRepo.SubtractIfAvailable(product.ID, qty)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Name)
			}
			if err := productRepo.SetLastExitDate(product.ID, now); err != nil {
				return err
			}
		default: // entrada y ajuste suman
			if err := productRepo.AddQuantity(product.ID, qty); err != nil {
				return err
			}
			if err := productRepo.SetLastEntryDate(product.ID, now); err != nil {
				return err
			}
		}
		movement.ProductID = product.ID
		movement.ProductName = product.Name
		movement.ProductSKU = product.SKU
		return movRepo.Create(movement)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.MovementsRejected.WithLabelValues("producto").Inc()
		}
		return nil, err
	}

	metrics.MovementsRegistered.WithLabelValues("producto", in.Kind).Inc()
	return toProductMovementResponse(movement), nil
}

// List devuelve todos los movimientos de productos, más recientes primero.
func (uc *ProductMovementUseCase) List() ([]dto.ProductMovementResponse, error) {
	list, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toProductMovementResponse(m))
	}
	return out, nil
}

func resolveProduct(productRepo repository.ProductRepository, in dto.RegisterProductMovementRequest) (*entity.Product, error) {
	var (
		product *entity.Product
		err     error
		ref     string
	)
	if in.Barcode != "" {
		ref = in.Barcode
		product, err = productRepo.GetByBarcode(in.Barcode)
	} else {
		ref = in.ProductID
		product, err = productRepo.GetByID(in.ProductID)
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, ref)
	}
	return product, nil
}

func toProductMovementResponse(m *entity.ProductMovement) *dto.ProductMovementResponse {
	return &dto.ProductMovementResponse{
		ID:          m.ID,
		Kind:        m.Kind,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		ProductSKU:  m.ProductSKU,
		Quantity:    m.Quantity,
		ActorID:     m.ActorID,
		ActorName:   m.ActorName,
		Note:        m.Note,
		Reference:   m.Reference,
		CreatedAt:   m.CreatedAt,
	}
}

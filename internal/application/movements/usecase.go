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

// MovementUseCase registra y lista movimientos de herramientas.
// El registro corre dentro de una transacción: o todas las líneas del lote se
// aplican y se escribe el asiento, o ninguna. Las salidas usan decremento
// condicional atómico, por lo que dos salidas concurrentes sobre la misma
// herramienta jamás dejan stock negativo.
type MovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	userRepo repository.UserRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, userRepo repository.UserRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo, userRepo: userRepo}
}

// Register registra un movimiento de herramientas (lote de entradas o salidas).
// Las líneas se resuelven en orden, por id o por código de escaneo.
func (uc *MovementUseCase) Register(ctx context.Context, actorID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Kind != entity.MovementKindEntry && in.Kind != entity.MovementKindExit {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Kind)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: el lote no tiene líneas", domain.ErrInvalidInput)
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
		}
		if l.ToolID == "" && l.Barcode == "" {
			return nil, fmt.Errorf("%w: cada línea requiere herramienta o barcode", domain.ErrInvalidInput)
		}
	}

	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}

	movement := &entity.Movement{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Note:      in.Note,
		Project:   in.Project,
		PhotoRef:  in.PhotoRef,
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(toolRepo repository.ToolRepository, movRepo repository.MovementRepository) error {
		for _, line := range in.Lines {
			tool, err := resolveTool(toolRepo, line)
			if err != nil {
				return err
			}
			qty := decimal.NewFromInt(line.Quantity)
			switch in.Kind {
			case entity.MovementKindEntry:
				if err := toolRepo.AddQuantity(tool.ID, qty); err != nil {
					return err
				}
			case entity.MovementKindExit:
				ok, err := toolRepo.SubtractIfAvailable(tool.ID, qty)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, tool.Name)
				}
			}
			movement.Lines = append(movement.Lines, entity.MovementLine{
				ToolID:      tool.ID,
				ToolName:    tool.Name,
				ToolBarcode: tool.Barcode,
				Quantity:    qty,
			})
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.MovementsRejected.WithLabelValues("herramienta").Inc()
		}
		return nil, err
	}

	metrics.MovementsRegistered.WithLabelValues("herramienta", in.Kind).Inc()
	return toMovementResponse(movement), nil
}

// List devuelve los movimientos visibles para el actor: admin ve todos,
// worker solo los propios. Más recientes primero.
func (uc *MovementUseCase) List(actorID, role string) ([]dto.MovementResponse, error) {
	var (
		list []*entity.Movement
		err  error
	)
	if role == entity.RoleAdmin {
		list, err = uc.movRepo.ListAll()
	} else {
		list, err = uc.movRepo.ListByActor(actorID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// resolveTool localiza la herramienta de una línea: por código de escaneo si
// viene barcode, si no por id.
func resolveTool(toolRepo repository.ToolRepository, line dto.MovementLineRequest) (*entity.Tool, error) {
	var (
		tool *entity.Tool
		err  error
		ref  string
	)
	if line.Barcode != "" {
		ref = line.Barcode
		tool, err = toolRepo.GetByCode(line.Barcode)
	} else {
		ref = line.ToolID
		tool, err = toolRepo.GetByID(line.ToolID)
	}
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, fmt.Errorf("%w: herramienta %q", domain.ErrNotFound, ref)
	}
	return tool, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	lines := make([]dto.MovementLineResponse, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, dto.MovementLineResponse{
			ToolID:      l.ToolID,
			ToolName:    l.ToolName,
			ToolBarcode: l.ToolBarcode,
			Quantity:    l.Quantity,
		})
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		Kind:      m.Kind,
		Lines:     lines,
		ActorID:   m.ActorID,
		ActorName: m.ActorName,
		Note:      m.Note,
		Project:   m.Project,
		PhotoRef:  m.PhotoRef,
		CreatedAt: m.CreatedAt,
	}
}

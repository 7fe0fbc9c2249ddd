package tools

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/codes"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

// ToolUseCase casos de uso CRUD para herramientas. La cantidad del request se
// normaliza con el parser de texto libre ("3,5", "1/4") antes de persistir.
type ToolUseCase struct {
	repo repository.ToolRepository
}

// NewToolUseCase construye el caso de uso.
func NewToolUseCase(repo repository.ToolRepository) *ToolUseCase {
	return &ToolUseCase{repo: repo}
}

// Create crea una herramienta.
func (uc *ToolUseCase) Create(in dto.CreateToolRequest) (*dto.ToolResponse, error) {
	if !entity.ValidToolCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, in.Category)
	}
	qty, err := codes.ParseQuantityJSON(in.Quantity)
	if err != nil {
		return nil, err
	}
	if qty.IsNegative() {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	state := in.State
	if state == "" {
		state = entity.ToolStateAvailable
	}
	now := time.Now()
	tool := &entity.Tool{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Brand:       in.Brand,
		Model:       in.Model,
		Serial:      in.Serial,
		Category:    in.Category,
		UnitMeasure: in.UnitMeasure,
		Quantity:    qty,
		State:       state,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(tool); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// GetByID obtiene una herramienta por ID.
func (uc *ToolUseCase) GetByID(id string) (*dto.ToolResponse, error) {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	return toToolResponse(tool), nil
}

// GetByCode obtiene una herramienta por código de escaneo (barcode o QR).
func (uc *ToolUseCase) GetByCode(code string) (*dto.ToolResponse, error) {
	tool, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	return toToolResponse(tool), nil
}

// List lista todas las herramientas.
func (uc *ToolUseCase) List() ([]dto.ToolResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ToolResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toToolResponse(t))
	}
	return out, nil
}

// Update actualiza los campos presentes del request. La cantidad pasa por el
// mismo parser que en la creación.
func (uc *ToolUseCase) Update(id string, in dto.UpdateToolRequest) (*dto.ToolResponse, error) {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		tool.Name = *in.Name
	}
	if in.Brand != nil {
		tool.Brand = *in.Brand
	}
	if in.Model != nil {
		tool.Model = *in.Model
	}
	if in.Serial != nil {
		tool.Serial = *in.Serial
	}
	if in.Category != nil {
		if !entity.ValidToolCategory(*in.Category) {
			return nil, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, *in.Category)
		}
		tool.Category = *in.Category
	}
	if in.UnitMeasure != nil {
		tool.UnitMeasure = *in.UnitMeasure
	}
	if len(in.Quantity) > 0 {
		qty, err := codes.ParseQuantityJSON(in.Quantity)
		if err != nil {
			return nil, err
		}
		if qty.IsNegative() {
			return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
		}
		tool.Quantity = qty
	}
	if in.State != nil {
		tool.State = *in.State
	}
	tool.UpdatedAt = time.Now()
	if err := uc.repo.Update(tool); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// Delete elimina una herramienta por ID.
func (uc *ToolUseCase) Delete(id string) error {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tool == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toToolResponse(t *entity.Tool) *dto.ToolResponse {
	return &dto.ToolResponse{
		ID:          t.ID,
		Name:        t.Name,
		Brand:       t.Brand,
		Model:       t.Model,
		Serial:      t.Serial,
		Category:    t.Category,
		UnitMeasure: t.UnitMeasure,
		Quantity:    t.Quantity,
		State:       t.State,
		Barcode:     t.Barcode,
		QRCode:      t.QRCode,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

package tools

import (
	"time"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/codes"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/pkg/metrics"
)

// CodeUseCase genera y consulta códigos de escaneo de herramientas.
// Generación individual: falla con ErrCodeCollision si el código ya existe
// (el caller puede reintentar). Generación masiva: la colisión omite el ítem
// y se continúa con el resto, reportando un resultado por ítem.
type CodeUseCase struct {
	repo repository.ToolRepository
}

// NewCodeUseCase construye el caso de uso.
func NewCodeUseCase(repo repository.ToolRepository) *CodeUseCase {
	return &CodeUseCase{repo: repo}
}

// Get devuelve los códigos actuales de una herramienta.
func (uc *CodeUseCase) Get(toolID string) (*dto.CodeResponse, error) {
	tool, err := uc.repo.GetByID(toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CodeResponse{ToolID: tool.ID, Barcode: tool.Barcode, QRCode: tool.QRCode}, nil
}

// Generate genera barcode y QR para una herramienta que aún no los tiene.
// Si ya existen, los devuelve sin regenerar.
func (uc *CodeUseCase) Generate(toolID string) (*dto.CodeResponse, error) {
	tool, err := uc.repo.GetByID(toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	if tool.Barcode != "" && tool.QRCode != "" {
		return &dto.CodeResponse{ToolID: tool.ID, Barcode: tool.Barcode, QRCode: tool.QRCode}, nil
	}

	now := time.Now()
	barcode := tool.Barcode
	qrCode := tool.QRCode
	if barcode == "" {
		barcode = codes.Barcode(tool.Brand, tool.Model, tool.Serial, now)
	}
	if qrCode == "" {
		qrCode = codes.QRCode(tool.Brand, tool.Model, tool.Serial, now)
	}

	if err := uc.ensureUnique(tool.ID, barcode, qrCode); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateCodes(tool.ID, barcode, qrCode); err != nil {
		return nil, err
	}
	metrics.CodesGenerated.WithLabelValues("barcode").Inc()
	metrics.CodesGenerated.WithLabelValues("qr").Inc()
	return &dto.CodeResponse{ToolID: tool.ID, Barcode: barcode, QRCode: qrCode}, nil
}

// GenerateBulk genera códigos para todas las herramientas que no los tienen.
// Usa la variante con sal aleatoria para que ítems creados en el mismo
// instante no colisionen; una colisión residual omite el ítem.
func (uc *CodeUseCase) GenerateBulk() ([]dto.BulkCodeResult, error) {
	pending, err := uc.repo.ListWithoutCodes()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results := make([]dto.BulkCodeResult, 0, len(pending))
	for _, tool := range pending {
		if tool.Barcode != "" && tool.QRCode != "" {
			results = append(results, dto.BulkCodeResult{
				ToolID: tool.ID, ToolName: tool.Name,
				Barcode: tool.Barcode, QRCode: tool.QRCode,
				Status: dto.CodeStatusExisting,
			})
			continue
		}
		barcode := tool.Barcode
		qrCode := tool.QRCode
		if barcode == "" {
			barcode, err = codes.BulkBarcode(tool.Brand, tool.Model, tool.Serial, now)
			if err != nil {
				return nil, err
			}
		}
		if qrCode == "" {
			qrCode, err = codes.BulkQRCode(tool.Brand, tool.Model, tool.Serial, now)
			if err != nil {
				return nil, err
			}
		}
		if err := uc.ensureUnique(tool.ID, barcode, qrCode); err != nil {
			results = append(results, dto.BulkCodeResult{
				ToolID: tool.ID, ToolName: tool.Name,
				Status: dto.CodeStatusSkipped,
			})
			continue
		}
		if err := uc.repo.UpdateCodes(tool.ID, barcode, qrCode); err != nil {
			return nil, err
		}
		metrics.CodesGenerated.WithLabelValues("barcode").Inc()
		metrics.CodesGenerated.WithLabelValues("qr").Inc()
		results = append(results, dto.BulkCodeResult{
			ToolID: tool.ID, ToolName: tool.Name,
			Barcode: barcode, QRCode: qrCode,
			Status: dto.CodeStatusGenerated,
		})
	}
	return results, nil
}

// ensureUnique verifica que ningún otro ítem tenga ya alguno de los códigos.
func (uc *CodeUseCase) ensureUnique(toolID, barcode, qrCode string) error {
	for _, code := range []string{barcode, qrCode} {
		if code == "" {
			continue
		}
		other, err := uc.repo.GetByCode(code)
		if err != nil {
			return err
		}
		if other != nil && other.ID != toolID {
			return domain.ErrCodeCollision
		}
	}
	return nil
}

// ToolForRender resuelve la herramienta cuyo código se va a renderizar como imagen.
func (uc *CodeUseCase) ToolForRender(toolID string) (*entity.Tool, error) {
	tool, err := uc.repo.GetByID(toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	return tool, nil
}

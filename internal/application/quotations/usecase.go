package quotations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

// defaultValidityDays vigencia por defecto de una cotización.
const defaultValidityDays = 15

// QuotationUseCase crea, lista y rinde a PDF las cotizaciones.
type QuotationUseCase struct {
	repo       repository.QuotationRepository
	clientRepo repository.ClientRepository
	pdfGen     QuotationPDFGenerator
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(repo repository.QuotationRepository, clientRepo repository.ClientRepository, pdfGen QuotationPDFGenerator) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, clientRepo: clientRepo, pdfGen: pdfGen}
}

// Create crea una cotización. Sin número en el request se asigna el siguiente
// consecutivo de la serie COT; un número repetido es ErrDuplicate.
func (uc *QuotationUseCase) Create(actorID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %q", domain.ErrNotFound, in.ClientID)
	}

	number := in.Number
	if number == "" {
		n, err := uc.repo.NextNumber()
		if err != nil {
			return nil, err
		}
		number = fmt.Sprintf("COT-%06d", n)
	} else if existing, _ := uc.repo.GetByNumber(number); existing != nil {
		return nil, domain.ErrDuplicate
	}

	subtotal := decimal.Zero
	lines := make([]entity.QuotationLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if !l.Quantity.IsPositive() || l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: línea %q", domain.ErrInvalidInput, l.Description)
		}
		lineSubtotal := l.Quantity.Mul(l.UnitPrice)
		subtotal = subtotal.Add(lineSubtotal)
		lines = append(lines, entity.QuotationLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    lineSubtotal,
		})
	}
	igv := subtotal.Mul(entity.IGVRate).Round(2)

	validity := in.ValidityDays
	if validity <= 0 {
		validity = defaultValidityDays
	}

	quotation := &entity.Quotation{
		ID:             uuid.New().String(),
		Number:         number,
		ClientID:       client.ID,
		ClientName:     client.Name,
		ClientDocument: client.Document,
		Lines:          lines,
		Subtotal:       subtotal,
		IGV:            igv,
		Total:          subtotal.Add(igv),
		ValidityDays:   validity,
		Note:           in.Note,
		CreatedBy:      actorID,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(quotation); err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation), nil
}

// GetByID obtiene una cotización por ID.
func (uc *QuotationUseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	quotation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, domain.ErrNotFound
	}
	return toQuotationResponse(quotation), nil
}

// List lista todas las cotizaciones, más recientes primero.
func (uc *QuotationUseCase) List() ([]dto.QuotationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, *toQuotationResponse(q))
	}
	return out, nil
}

// GeneratePDF rinde la cotización a PDF.
func (uc *QuotationUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, string, error) {
	quotation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if quotation == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.pdfGen.GenerateQuotationPDF(ctx, quotation)
	if err != nil {
		return nil, "", err
	}
	return pdf, quotation.Number + ".pdf", nil
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	lines := make([]dto.QuotationLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, dto.QuotationLineResponse{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return &dto.QuotationResponse{
		ID:             q.ID,
		Number:         q.Number,
		ClientID:       q.ClientID,
		ClientName:     q.ClientName,
		ClientDocument: q.ClientDocument,
		Lines:          lines,
		Subtotal:       q.Subtotal,
		IGV:            q.IGV,
		Total:          q.Total,
		ValidityDays:   q.ValidityDays,
		Note:           q.Note,
		CreatedBy:      q.CreatedBy,
		CreatedAt:      q.CreatedAt,
	}
}

package quotations

import (
	"context"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

// QuotationPDFGenerator puerto de generación del PDF de una cotización.
// Lo implementa el adaptador Maroto en internal/infrastructure/pdf.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, quotation *entity.Quotation) ([]byte, error)
}

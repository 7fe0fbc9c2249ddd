// Package pdf implementa la generación del documento imprimible de una
// cotización usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  N° Cotización + Fecha + Vigencia       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + RUC/DNI                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IGV 18% / TOTAL                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTA + leyenda de validez                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appquotations "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/quotations"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

var _ appquotations.QuotationPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa quotations.QuotationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator construye el generador con el nombre de la empresa
// que encabeza el documento.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

// GenerateQuotationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotationPDF(_ context.Context, quotation *entity.Quotation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+quotation.Number, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(quotation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(quotation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(quotation.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quotation))

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(quotation) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y N° de cotización + fecha + vigencia (der).
func (g *MarotoPDFGenerator) headerRow(quotation *entity.Quotation) core.Row {
	fecha := quotation.CreatedAt.Format("02/01/2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario y Cotizaciones", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quotation.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Validez: %d días", fecha, quotation.ValidityDays), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente (snapshot al momento de cotizar).
func clientRow(quotation *entity.Quotation) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(quotation.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("RUC/DNI: "+nonEmpty(quotation.ClientDocument, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Descripción", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de la cotización.
func tableLineRows(lines []entity.QuotationLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"S/ "+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(quotation *entity.Quotation) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("IGV (18%):"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("S/ "+quotation.Subtotal.StringFixed(2)),
			value("S/ "+quotation.IGV.StringFixed(2)),
			grandValue("S/ "+quotation.Total.StringFixed(2)),
		),
		col.New(3),
	)
}

// footerRows: nota opcional + leyenda de validez.
func footerRows(quotation *entity.Quotation) []core.Row {
	var rows []core.Row

	if quotation.Note != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("NOTA", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)),
			row.New(8).Add(col.New(12).Add(
				text.New(quotation.Note, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Cotización válida por %d días calendario desde su fecha de emisión. "+
				"Precios incluyen IGV.", quotation.ValidityDays),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

package quotations_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/quotations"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuotationRepo struct {
	quotations map[string]*entity.Quotation
	seq        int64
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: make(map[string]*entity.Quotation)}
}

func (r *fakeQuotationRepo) Create(q *entity.Quotation) error {
	for _, existing := range r.quotations {
		if existing.Number == q.Number {
			return domain.ErrDuplicate
		}
	}
	r.quotations[q.ID] = q
	return nil
}

func (r *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, nil
	}
	return q, nil
}

func (r *fakeQuotationRepo) GetByNumber(number string) (*entity.Quotation, error) {
	for _, q := range r.quotations {
		if q.Number == number {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuotationRepo) List() ([]*entity.Quotation, error) {
	var list []*entity.Quotation
	for _, q := range r.quotations {
		list = append(list, q)
	}
	return list, nil
}

func (r *fakeQuotationRepo) NextNumber() (int64, error) {
	r.seq++
	return r.seq, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error      { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) List() ([]*entity.Client, error)    { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error      { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Delete(id string) error             { delete(r.clients, id); return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

type fakePDFGenerator struct {
	calls int
}

func (g *fakePDFGenerator) GenerateQuotationPDF(_ context.Context, _ *entity.Quotation) ([]byte, error) {
	g.calls++
	return []byte("%PDF-1.7 fake"), nil
}

func newQuotationFixture() (*quotations.QuotationUseCase, *fakeQuotationRepo, *fakePDFGenerator) {
	repo := newFakeQuotationRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Constructora Sol", Document: "20123456789", CreatedAt: time.Now()},
	}}
	pdfGen := &fakePDFGenerator{}
	return quotations.NewQuotationUseCase(repo, clientRepo, pdfGen), repo, pdfGen
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_TotalesConIGV(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	out, err := uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "c1",
		Lines: []dto.QuotationLineRequest{
			{Description: "Alquiler taladro", Quantity: price("2"), UnitPrice: price("50")},
			{Description: "Cemento", Quantity: price("10"), UnitPrice: price("25.50")},
		},
	})
	require.NoError(t, err)

	// 2*50 + 10*25.50 = 355; IGV 18% = 63.90; total = 418.90
	assert.True(t, out.Subtotal.Equal(price("355")), "subtotal = %s", out.Subtotal)
	assert.True(t, out.IGV.Equal(price("63.90")), "igv = %s", out.IGV)
	assert.True(t, out.Total.Equal(price("418.90")), "total = %s", out.Total)

	require.Len(t, out.Lines, 2)
	assert.True(t, out.Lines[1].Subtotal.Equal(price("255")))
	assert.Equal(t, "Constructora Sol", out.ClientName, "snapshot del cliente")
	assert.Equal(t, "20123456789", out.ClientDocument)
	assert.Equal(t, 15, out.ValidityDays, "vigencia por defecto")
	assert.Equal(t, "user-1", out.CreatedBy)
}

func TestCreate_NumeracionConsecutiva(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	first, err := uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "x", Quantity: price("1"), UnitPrice: price("1")}},
	})
	require.NoError(t, err)
	second, err := uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "y", Quantity: price("1"), UnitPrice: price("1")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "COT-000001", first.Number)
	assert.Equal(t, "COT-000002", second.Number)
}

func TestCreate_NumeroExplicitoYDuplicado(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	out, err := uc.Create("user-1", dto.CreateQuotationRequest{
		Number:   "COT-900001",
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "x", Quantity: price("1"), UnitPrice: price("1")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "COT-900001", out.Number)

	_, err = uc.Create("user-1", dto.CreateQuotationRequest{
		Number:   "COT-900001",
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "y", Quantity: price("1"), UnitPrice: price("1")}},
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	_, err := uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "no-existe",
		Lines:    []dto.QuotationLineRequest{{Description: "x", Quantity: price("1"), UnitPrice: price("1")}},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreate_LineasInvalidas(t *testing.T) {
	uc, _, _ := newQuotationFixture()

	_, err := uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "x", Quantity: price("0"), UnitPrice: price("1")}},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad cero es inválida")

	_, err = uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "x", Quantity: price("1"), UnitPrice: price("-5")}},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "precio negativo es inválido")
}

func TestGeneratePDF(t *testing.T) {
	uc, _, pdfGen := newQuotationFixture()

	created, err := uc.Create("user-1", dto.CreateQuotationRequest{
		ClientID: "c1",
		Lines:    []dto.QuotationLineRequest{{Description: "x", Quantity: price("1"), UnitPrice: price("1")}},
	})
	require.NoError(t, err)

	data, filename, err := uc.GeneratePDF(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, created.Number+".pdf", filename)
	assert.Equal(t, 1, pdfGen.calls)

	_, _, err = uc.GeneratePDF(context.Background(), "no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

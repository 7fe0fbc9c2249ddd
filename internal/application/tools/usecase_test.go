package tools_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/tools"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

// fakeToolRepo en memoria para los tests de herramientas y códigos.
type fakeToolRepo struct {
	tools map[string]*entity.Tool
}

func newFakeToolRepo(list ...*entity.Tool) *fakeToolRepo {
	r := &fakeToolRepo{tools: make(map[string]*entity.Tool)}
	for _, t := range list {
		cp := *t
		r.tools[t.ID] = &cp
	}
	return r
}

func (r *fakeToolRepo) Create(tool *entity.Tool) error {
	cp := *tool
	r.tools[tool.ID] = &cp
	return nil
}

func (r *fakeToolRepo) GetByID(id string) (*entity.Tool, error) {
	t, ok := r.tools[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeToolRepo) GetByCode(code string) (*entity.Tool, error) {
	for _, t := range r.tools {
		if t.Barcode == code || t.QRCode == code {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeToolRepo) List() ([]*entity.Tool, error) {
	var list []*entity.Tool
	for _, t := range r.tools {
		cp := *t
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeToolRepo) ListWithoutCodes() ([]*entity.Tool, error) {
	var list []*entity.Tool
	for _, t := range r.tools {
		if t.Barcode == "" || t.QRCode == "" {
			cp := *t
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeToolRepo) Update(tool *entity.Tool) error {
	cp := *tool
	r.tools[tool.ID] = &cp
	return nil
}

func (r *fakeToolRepo) UpdateCodes(id, barcode, qrCode string) error {
	if t, ok := r.tools[id]; ok {
		t.Barcode = barcode
		t.QRCode = qrCode
	}
	return nil
}

func (r *fakeToolRepo) AddQuantity(id string, delta decimal.Decimal) error {
	if t, ok := r.tools[id]; ok {
		t.Quantity = t.Quantity.Add(delta)
	}
	return nil
}

func (r *fakeToolRepo) SubtractIfAvailable(id string, qty decimal.Decimal) (bool, error) {
	t, ok := r.tools[id]
	if !ok || t.Quantity.LessThan(qty) {
		return false, nil
	}
	t.Quantity = t.Quantity.Sub(qty)
	return true, nil
}

func (r *fakeToolRepo) Delete(id string) error {
	delete(r.tools, id)
	return nil
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CantidadesNormalizadas(t *testing.T) {
	cases := []struct {
		name string
		in   json.RawMessage
		want string
	}{
		{"número JSON", raw(`4`), "4"},
		{"string decimal con coma", raw(`"3,5"`), "3.5"},
		{"string fracción", raw(`"1/4"`), "0.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := tools.NewToolUseCase(newFakeToolRepo())
			out, err := uc.Create(dto.CreateToolRequest{
				Name: "Taladro", Category: entity.ToolCategoryElectrica, Quantity: tc.in,
			})
			require.NoError(t, err)
			want, _ := decimal.NewFromString(tc.want)
			assert.True(t, out.Quantity.Equal(want), "cantidad = %s, se esperaba %s", out.Quantity, tc.want)
		})
	}
}

func TestCreate_EstadoPorDefecto(t *testing.T) {
	uc := tools.NewToolUseCase(newFakeToolRepo())
	out, err := uc.Create(dto.CreateToolRequest{
		Name: "Taladro", Category: entity.ToolCategoryManual, Quantity: raw(`1`),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ToolStateAvailable, out.State)
}

func TestCreate_Invalidas(t *testing.T) {
	uc := tools.NewToolUseCase(newFakeToolRepo())

	_, err := uc.Create(dto.CreateToolRequest{
		Name: "Taladro", Category: "jardineria", Quantity: raw(`1`),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "categoría fuera del conjunto cerrado")

	_, err = uc.Create(dto.CreateToolRequest{
		Name: "Taladro", Category: entity.ToolCategoryManual, Quantity: raw(`"abc"`),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad no numérica")

	_, err = uc.Create(dto.CreateToolRequest{
		Name: "Taladro", Category: entity.ToolCategoryManual, Quantity: raw(`-1`),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad negativa")
}

func TestUpdate_CamposParciales(t *testing.T) {
	repo := newFakeToolRepo(&entity.Tool{
		ID: "t1", Name: "Taladro", Category: entity.ToolCategoryElectrica,
		Quantity: decimal.NewFromInt(2), State: entity.ToolStateAvailable,
	})
	uc := tools.NewToolUseCase(repo)

	newState := entity.ToolStateLoaned
	out, err := uc.Update("t1", dto.UpdateToolRequest{
		Quantity: raw(`"7,5"`),
		State:    &newState,
	})
	require.NoError(t, err)
	want, _ := decimal.NewFromString("7.5")
	assert.True(t, out.Quantity.Equal(want))
	assert.Equal(t, entity.ToolStateLoaned, out.State)
	assert.Equal(t, "Taladro", out.Name, "los campos ausentes no cambian")
}

func TestGetByCode(t *testing.T) {
	repo := newFakeToolRepo(&entity.Tool{ID: "t1", Name: "Taladro", Barcode: "AABBCCDD", QRCode: "INV-AABBCCDD"})
	uc := tools.NewToolUseCase(repo)

	byBarcode, err := uc.GetByCode("AABBCCDD")
	require.NoError(t, err)
	assert.Equal(t, "t1", byBarcode.ID)

	byQR, err := uc.GetByCode("INV-AABBCCDD")
	require.NoError(t, err)
	assert.Equal(t, "t1", byQR.ID)

	_, err = uc.GetByCode("XXXXXXXX")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de generación de códigos
// ──────────────────────────────────────────────────────────────────────────────

func TestCodeGenerate_Idempotente(t *testing.T) {
	repo := newFakeToolRepo(&entity.Tool{ID: "t1", Name: "Taladro", Brand: "Bosch", Model: "GSB", Serial: "S1"})
	uc := tools.NewCodeUseCase(repo)

	first, err := uc.Generate("t1")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Barcode)
	assert.NotEmpty(t, first.QRCode)

	second, err := uc.Generate("t1")
	require.NoError(t, err)
	assert.Equal(t, first.Barcode, second.Barcode, "regenerar no debe cambiar los códigos")
	assert.Equal(t, first.QRCode, second.QRCode)
}

func TestCodeGenerate_Inexistente(t *testing.T) {
	uc := tools.NewCodeUseCase(newFakeToolRepo())
	_, err := uc.Generate("nada")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCodeGenerateBulk_EstadosPorItem(t *testing.T) {
	repo := newFakeToolRepo(
		&entity.Tool{ID: "t1", Name: "Taladro", Brand: "Bosch"},
		&entity.Tool{ID: "t2", Name: "Martillo", Brand: "Stanley"},
		&entity.Tool{ID: "t3", Name: "Nivel", Barcode: "AABBCCDD", QRCode: "INV-AABBCCDD"},
	)
	uc := tools.NewCodeUseCase(repo)

	results, err := uc.GenerateBulk()
	require.NoError(t, err)
	require.Len(t, results, 2, "solo entran los ítems sin códigos completos")

	seen := make(map[string]string)
	for _, r := range results {
		assert.Equal(t, dto.CodeStatusGenerated, r.Status)
		assert.NotEmpty(t, r.Barcode)
		assert.NotEmpty(t, r.QRCode)
		assert.NotContains(t, seen, r.Barcode, "los códigos generados no deben colisionar")
		seen[r.Barcode] = r.ToolID
	}

	t1, _ := repo.GetByID("t1")
	assert.NotEmpty(t, t1.Barcode, "los códigos deben persistirse")
}

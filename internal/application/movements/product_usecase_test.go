package movements_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/movements"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
)

func newProductMovementFixture(products ...*entity.Product) (*movements.ProductMovementUseCase, *fakeProductRepo, *fakeProductMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeProductMovementRepo{}
	userRepo := newFakeUserRepo(
		&entity.User{ID: actorWorker, Name: "Beto", Role: entity.RoleWorker},
	)
	tx := &fakeTxRunner{productRepo: productRepo, prodMovRepo: movRepo}
	return movements.NewProductMovementUseCase(tx, movRepo, userRepo), productRepo, movRepo
}

func TestProductRegister_EntradaActualizaFecha(t *testing.T) {
	uc, productRepo, movRepo := newProductMovementFixture(
		&entity.Product{ID: "p1", Name: "Cemento", SKU: "CEM-42", Quantity: qty("10")},
	)

	out, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		ProductID: "p1",
		Kind:      entity.ProductMovementEntry,
		Quantity:  5,
	})
	require.NoError(t, err)

	p1, _ := productRepo.GetByID("p1")
	assert.True(t, p1.Quantity.Equal(qty("15")))
	assert.NotNil(t, p1.LastEntryDate, "la entrada marca la fecha de última entrada")
	assert.Nil(t, p1.LastExitDate)

	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, "CEM-42", out.ProductSKU, "la respuesta lleva snapshot del SKU")
	assert.Equal(t, "Beto", out.ActorName)
}

func TestProductRegister_SalidaActualizaFecha(t *testing.T) {
	uc, productRepo, _ := newProductMovementFixture(
		&entity.Product{ID: "p1", Name: "Cemento", Quantity: qty("10")},
	)

	_, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		ProductID: "p1",
		Kind:      entity.ProductMovementExit,
		Quantity:  4,
	})
	require.NoError(t, err)

	p1, _ := productRepo.GetByID("p1")
	assert.True(t, p1.Quantity.Equal(qty("6")))
	assert.NotNil(t, p1.LastExitDate)
	assert.Nil(t, p1.LastEntryDate)
}

func TestProductRegister_AjusteSumaComoEntrada(t *testing.T) {
	uc, productRepo, _ := newProductMovementFixture(
		&entity.Product{ID: "p1", Name: "Cemento", Quantity: qty("3")},
	)

	out, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		ProductID: "p1",
		Kind:      entity.ProductMovementAdjust,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductMovementAdjust, out.Kind)

	p1, _ := productRepo.GetByID("p1")
	assert.True(t, p1.Quantity.Equal(qty("5")), "el ajuste suma")
	assert.NotNil(t, p1.LastEntryDate)
}

func TestProductRegister_PorBarcode(t *testing.T) {
	uc, _, _ := newProductMovementFixture(
		&entity.Product{ID: "p1", Name: "Cemento", Barcode: "9F8E7D6C", Quantity: qty("1")},
	)

	out, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		Barcode:  "9F8E7D6C",
		Kind:     entity.ProductMovementEntry,
		Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", out.ProductID)
}

func TestProductRegister_StockInsuficienteSinCambios(t *testing.T) {
	uc, productRepo, movRepo := newProductMovementFixture(
		&entity.Product{ID: "p1", Name: "Cemento", Quantity: qty("2")},
	)

	_, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		ProductID: "p1",
		Kind:      entity.ProductMovementExit,
		Quantity:  3,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	p1, _ := productRepo.GetByID("p1")
	assert.True(t, p1.Quantity.Equal(qty("2")), "el stock no debe cambiar")
	assert.Nil(t, p1.LastExitDate, "la fecha de salida no debe marcarse")
	assert.Empty(t, movRepo.movements)
}

func TestProductRegister_NombreUsuarioDelBodySeIgnora(t *testing.T) {
	uc, _, _ := newProductMovementFixture(
		&entity.Product{ID: "p1", Name: "Cemento", Quantity: qty("1")},
	)

	out, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		ProductID: "p1",
		Kind:      entity.ProductMovementEntry,
		Quantity:  1,
		ActorName: "Impostor",
	})
	require.NoError(t, err)
	assert.Equal(t, "Beto", out.ActorName, "el actor sale del token, no del body")
	assert.Equal(t, actorWorker, out.ActorID)
}

func TestProductRegister_Validaciones(t *testing.T) {
	uc, _, _ := newProductMovementFixture(&entity.Product{ID: "p1", Quantity: qty("1")})
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RegisterProductMovementRequest
	}{
		{"tipo desconocido", dto.RegisterProductMovementRequest{ProductID: "p1", Kind: "merma", Quantity: 1}},
		{"cantidad cero", dto.RegisterProductMovementRequest{ProductID: "p1", Kind: entity.ProductMovementEntry, Quantity: 0}},
		{"sin referencia de producto", dto.RegisterProductMovementRequest{Kind: entity.ProductMovementEntry, Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(ctx, actorWorker, tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestProductRegister_ProductoInexistente(t *testing.T) {
	uc, _, _ := newProductMovementFixture()

	_, err := uc.Register(context.Background(), actorWorker, dto.RegisterProductMovementRequest{
		ProductID: "nada",
		Kind:      entity.ProductMovementEntry,
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

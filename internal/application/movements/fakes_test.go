package movements_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/movements"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner toma un snapshot del estado antes de
// ejecutar la función y lo restaura si falla, para poder afirmar la semántica
// todo-o-nada del lote sin una base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeToolRepo struct {
	tools map[string]*entity.Tool
}

func newFakeToolRepo(tools ...*entity.Tool) *fakeToolRepo {
	r := &fakeToolRepo{tools: make(map[string]*entity.Tool)}
	for _, t := range tools {
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
	if !ok {
		return false, nil
	}
	if t.Quantity.LessThan(qty) {
		return false, nil
	}
	t.Quantity = t.Quantity.Sub(qty)
	return true, nil
}

func (r *fakeToolRepo) Delete(id string) error {
	delete(r.tools, id)
	return nil
}

func (r *fakeToolRepo) snapshot() map[string]*entity.Tool {
	snap := make(map[string]*entity.Tool, len(r.tools))
	for k, v := range r.tools {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListAll() ([]*entity.Movement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) ListByActor(actorID string) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.movements {
		if m.ActorID == actorID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	if len(r.movements) <= limit {
		return r.movements, nil
	}
	return r.movements[len(r.movements)-limit:], nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AddQuantity(id string, delta decimal.Decimal) error {
	if p, ok := r.products[id]; ok {
		p.Quantity = p.Quantity.Add(delta)
	}
	return nil
}

func (r *fakeProductRepo) SubtractIfAvailable(id string, qty decimal.Decimal) (bool, error) {
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	if p.Quantity.LessThan(qty) {
		return false, nil
	}
	p.Quantity = p.Quantity.Sub(qty)
	return true, nil
}

func (r *fakeProductRepo) SetLastEntryDate(id string, at time.Time) error {
	if p, ok := r.products[id]; ok {
		t := at
		p.LastEntryDate = &t
	}
	return nil
}

func (r *fakeProductRepo) SetLastExitDate(id string, at time.Time) error {
	if p, ok := r.products[id]; ok {
		t := at
		p.LastExitDate = &t
	}
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) snapshot() map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for k, v := range r.products {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeProductMovementRepo struct {
	movements []*entity.ProductMovement
}

func (r *fakeProductMovementRepo) Create(m *entity.ProductMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeProductMovementRepo) ListAll() ([]*entity.ProductMovement, error) {
	return r.movements, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUserRepo) Count() (int, error) {
	return len(r.users), nil
}

// fakeTxRunner aplica la función sobre los fakes y restaura el snapshot si
// falla, imitando el rollback de una transacción real.
type fakeTxRunner struct {
	toolRepo    *fakeToolRepo
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
	prodMovRepo *fakeProductMovementRepo
}

var _ movements.TxRunner = (*fakeTxRunner)(nil)

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ToolRepository, repository.MovementRepository) error) error {
	toolSnap := tx.toolRepo.snapshot()
	movSnap := len(tx.movRepo.movements)
	if err := fn(tx.toolRepo, tx.movRepo); err != nil {
		tx.toolRepo.tools = toolSnap
		tx.movRepo.movements = tx.movRepo.movements[:movSnap]
		return err
	}
	return nil
}

func (tx *fakeTxRunner) RunProduct(_ context.Context, fn func(repository.ProductRepository, repository.ProductMovementRepository) error) error {
	productSnap := tx.productRepo.snapshot()
	movSnap := len(tx.prodMovRepo.movements)
	if err := fn(tx.productRepo, tx.prodMovRepo); err != nil {
		tx.productRepo.products = productSnap
		tx.prodMovRepo.movements = tx.prodMovRepo.movements[:movSnap]
		return err
	}
	return nil
}

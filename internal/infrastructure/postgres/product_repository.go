package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, category, unit_measure, quantity, COALESCE(barcode, ''), last_entry_date, last_exit_date, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, category, unit_measure, quantity, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Category, product.UnitMeasure,
		product.Quantity, product.Barcode, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

// GetByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE barcode = $1`, code)
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.UnitMeasure, &p.Quantity,
		&p.Barcode, &p.LastEntryDate, &p.LastExitDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.UnitMeasure, &p.Quantity,
			&p.Barcode, &p.LastEntryDate, &p.LastExitDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los atributos descriptivos (la cantidad se maneja vía movimientos).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, unit_measure = $4, barcode = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.UnitMeasure, product.Barcode, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AddQuantity incrementa la cantidad en delta.
func (r *ProductRepo) AddQuantity(id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("add product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SubtractIfAvailable decremento condicional atómico; false = stock insuficiente.
func (r *ProductRepo) SubtractIfAvailable(id string, qty decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity - $2, updated_at = now() WHERE id = $1 AND quantity >= $2`,
		id, qty,
	)
	if err != nil {
		return false, fmt.Errorf("subtract product quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SetLastEntryDate fija la marca de última entrada.
func (r *ProductRepo) SetLastEntryDate(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET last_entry_date = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("set last entry date: %w", err)
	}
	return nil
}

// SetLastExitDate fija la marca de última salida.
func (r *ProductRepo) SetLastExitDate(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET last_exit_date = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("set last exit date: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

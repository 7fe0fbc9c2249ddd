package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL.
type QuotationRepo struct {
	pool *pgxpool.Pool
}

// NewQuotationRepository construye el adaptador de persistencia para cotizaciones.
func NewQuotationRepository(pool *pgxpool.Pool) *QuotationRepo {
	return &QuotationRepo{pool: pool}
}

// Create persiste la cotización junto con sus líneas en una transacción.
func (r *QuotationRepo) Create(quotation *entity.Quotation) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO quotations (id, number, client_id, client_name, client_document,
			subtotal, igv, total, validity_days, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		quotation.ID, quotation.Number, quotation.ClientID, quotation.ClientName, quotation.ClientDocument,
		quotation.Subtotal, quotation.IGV, quotation.Total, quotation.ValidityDays,
		quotation.Note, quotation.CreatedBy, quotation.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: number %s", domain.ErrDuplicate, quotation.Number)
		}
		return fmt.Errorf("insert quotation: %w", err)
	}

	for _, line := range quotation.Lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO quotation_lines (quotation_id, description, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5)`,
			quotation.ID, line.Description, line.Quantity, line.UnitPrice, line.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert quotation line: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID obtiene una cotización con sus líneas.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	return r.getOne(`WHERE q.id = $1`, id)
}

// GetByNumber obtiene una cotización por su número de serie.
func (r *QuotationRepo) GetByNumber(number string) (*entity.Quotation, error) {
	return r.getOne(`WHERE q.number = $1`, number)
}

// List lista todas las cotizaciones, la más reciente primero.
func (r *QuotationRepo) List() ([]*entity.Quotation, error) {
	return r.listWhere("")
}

// NextNumber consume el siguiente consecutivo de la secuencia de cotizaciones.
func (r *QuotationRepo) NextNumber() (int64, error) {
	var n int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT nextval('quotation_number_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next quotation number: %w", err)
	}
	return n, nil
}

func (r *QuotationRepo) getOne(where string, arg any) (*entity.Quotation, error) {
	list, err := r.listWhere(where, arg)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// listWhere carga cotizaciones y líneas en una sola consulta y agrupa en memoria.
func (r *QuotationRepo) listWhere(where string, args ...any) ([]*entity.Quotation, error) {
	query := `
		SELECT q.id, q.number, q.client_id, q.client_name, q.client_document,
			q.subtotal, q.igv, q.total, q.validity_days, q.note, q.created_by, q.created_at,
			l.description, l.quantity, l.unit_price, l.subtotal
		FROM quotations q
		JOIN quotation_lines l ON l.quotation_id = q.id ` + where + `
		ORDER BY q.created_at DESC, q.id, l.id`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var (
		list    []*entity.Quotation
		current *entity.Quotation
	)
	for rows.Next() {
		var (
			q    entity.Quotation
			line entity.QuotationLine
		)
		err := rows.Scan(
			&q.ID, &q.Number, &q.ClientID, &q.ClientName, &q.ClientDocument,
			&q.Subtotal, &q.IGV, &q.Total, &q.ValidityDays, &q.Note, &q.CreatedBy, &q.CreatedAt,
			&line.Description, &line.Quantity, &line.UnitPrice, &line.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		if current == nil || current.ID != q.ID {
			list = append(list, &q)
			current = list[len(list)-1]
		}
		current.Lines = append(current.Lines, line)
	}
	return list, rows.Err()
}

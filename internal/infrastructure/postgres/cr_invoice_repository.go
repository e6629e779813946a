package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

var _ repository.CrInvoiceRepository = (*CrInvoiceRepo)(nil)

const crInvoiceColumns = `id, client_id, cr_number, description, amount, currency,
	status, issue_date, due_date, created_at, updated_at`

// CrInvoiceRepo implements CrInvoiceRepository. The cr_number column carries
// a unique constraint; violations map to domain.ErrDuplicate.
type CrInvoiceRepo struct {
	q Querier
}

// NewCrInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCrInvoiceRepository(q Querier) *CrInvoiceRepo {
	return &CrInvoiceRepo{q: q}
}

// Create persists a new CR invoice.
func (r *CrInvoiceRepo) Create(invoice *entity.CrInvoice) error {
	query := `
		INSERT INTO cr_invoices (id, client_id, cr_number, description, amount, currency, status, issue_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ClientID, invoice.CrNumber, invoice.Description,
		invoice.Amount, invoice.Currency, invoice.Status,
		invoice.IssueDate, invoice.DueDate, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cr invoice: %w", err)
	}
	return nil
}

// GetByID returns the CR invoice or nil when not found.
func (r *CrInvoiceRepo) GetByID(id string) (*entity.CrInvoice, error) {
	query := `SELECT ` + crInvoiceColumns + ` FROM cr_invoices WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByCrNumber returns the CR invoice with the given CR number, or nil.
func (r *CrInvoiceRepo) GetByCrNumber(crNumber string) (*entity.CrInvoice, error) {
	query := `SELECT ` + crInvoiceColumns + ` FROM cr_invoices WHERE cr_number = $1`
	return r.queryOne(query, crNumber)
}

func (r *CrInvoiceRepo) queryOne(query string, arg any) (*entity.CrInvoice, error) {
	var inv entity.CrInvoice
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&inv.ID, &inv.ClientID, &inv.CrNumber, &inv.Description, &inv.Amount, &inv.Currency,
		&inv.Status, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cr invoice: %w", err)
	}
	return &inv, nil
}

// List returns CR invoices ordered by due date with pagination.
func (r *CrInvoiceRepo) List(limit, offset int) ([]*entity.CrInvoice, error) {
	query := `SELECT ` + crInvoiceColumns + ` FROM cr_invoices ORDER BY due_date LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListByClient returns all CR invoices of a client.
func (r *CrInvoiceRepo) ListByClient(clientID string) ([]*entity.CrInvoice, error) {
	query := `SELECT ` + crInvoiceColumns + ` FROM cr_invoices WHERE client_id = $1 ORDER BY due_date`
	return r.queryMany(query, clientID)
}

func (r *CrInvoiceRepo) queryMany(query string, args ...any) ([]*entity.CrInvoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cr invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.CrInvoice
	for rows.Next() {
		var inv entity.CrInvoice
		if err := rows.Scan(
			&inv.ID, &inv.ClientID, &inv.CrNumber, &inv.Description, &inv.Amount, &inv.Currency,
			&inv.Status, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cr invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update updates a CR invoice.
func (r *CrInvoiceRepo) Update(invoice *entity.CrInvoice) error {
	query := `
		UPDATE cr_invoices
		SET cr_number = $2, description = $3, amount = $4, currency = $5, status = $6,
		    issue_date = $7, due_date = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CrNumber, invoice.Description, invoice.Amount, invoice.Currency,
		invoice.Status, invoice.IssueDate, invoice.DueDate, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cr invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a CR invoice by ID.
func (r *CrInvoiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM cr_invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cr invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

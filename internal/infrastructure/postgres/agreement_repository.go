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

var _ repository.AgreementRepository = (*AgreementRepo)(nil)

const agreementColumns = `id, client_id, name, start_date, end_date, value, currency,
	status, auto_renewal, created_at, updated_at`

// AgreementRepo implements AgreementRepository (usable with pool or tx).
type AgreementRepo struct {
	q Querier
}

// NewAgreementRepository builds the adapter. Pass a pool or a tx (Querier).
func NewAgreementRepository(q Querier) *AgreementRepo {
	return &AgreementRepo{q: q}
}

// Create persists a new agreement.
func (r *AgreementRepo) Create(agreement *entity.Agreement) error {
	query := `
		INSERT INTO agreements (id, client_id, name, start_date, end_date, value, currency, status, auto_renewal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		agreement.ID, agreement.ClientID, agreement.Name, agreement.StartDate, agreement.EndDate,
		agreement.Value, agreement.Currency, agreement.Status, agreement.AutoRenewal,
		agreement.CreatedAt, agreement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agreement: %w", err)
	}
	return nil
}

// GetByID returns the agreement or nil when not found.
func (r *AgreementRepo) GetByID(id string) (*entity.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE id = $1`
	var a entity.Agreement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ClientID, &a.Name, &a.StartDate, &a.EndDate, &a.Value, &a.Currency,
		&a.Status, &a.AutoRenewal, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agreement: %w", err)
	}
	return &a, nil
}

// List returns agreements ordered by end date (soonest first) with pagination.
func (r *AgreementRepo) List(limit, offset int) ([]*entity.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements ORDER BY end_date LIMIT $1 OFFSET $2`
	return r.queryAgreements(query, limit, offset)
}

// ListByClient returns all agreements of a client.
func (r *AgreementRepo) ListByClient(clientID string) ([]*entity.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE client_id = $1 ORDER BY end_date`
	return r.queryAgreements(query, clientID)
}

func (r *AgreementRepo) queryAgreements(query string, args ...any) ([]*entity.Agreement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agreement
	for rows.Next() {
		var a entity.Agreement
		if err := rows.Scan(
			&a.ID, &a.ClientID, &a.Name, &a.StartDate, &a.EndDate, &a.Value, &a.Currency,
			&a.Status, &a.AutoRenewal, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan agreement: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update updates an agreement.
func (r *AgreementRepo) Update(agreement *entity.Agreement) error {
	query := `
		UPDATE agreements
		SET name = $2, start_date = $3, end_date = $4, value = $5, currency = $6,
		    status = $7, auto_renewal = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		agreement.ID, agreement.Name, agreement.StartDate, agreement.EndDate,
		agreement.Value, agreement.Currency, agreement.Status, agreement.AutoRenewal,
		agreement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agreement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an agreement by ID.
func (r *AgreementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM agreements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agreement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

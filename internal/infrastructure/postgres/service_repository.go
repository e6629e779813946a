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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, client_id, service_type, amount, currency, recurring,
	COALESCE(billing_cycle, ''), COALESCE(assigned_csm_id::TEXT, ''),
	start_date, go_live_date, invoice_date, created_at, updated_at`

// ServiceRepo implements ServiceRepository (usable with pool or tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persists a new service.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (id, client_id, service_type, amount, currency, recurring,
			billing_cycle, assigned_csm_id, start_date, go_live_date, invoice_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, '')::UUID, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.ClientID, service.ServiceType, service.Amount, service.Currency,
		service.Recurring, service.BillingCycle, service.AssignedCSMID,
		service.StartDate, service.GoLiveDate, service.InvoiceDate,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID returns the service or nil when not found.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	var s entity.Service
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClientID, &s.ServiceType, &s.Amount, &s.Currency, &s.Recurring,
		&s.BillingCycle, &s.AssignedCSMID, &s.StartDate, &s.GoLiveDate, &s.InvoiceDate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List returns services ordered by creation date (newest first) with pagination.
func (r *ServiceRepo) List(limit, offset int) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryServices(query, limit, offset)
}

// ListByClient returns all services of a client.
func (r *ServiceRepo) ListByClient(clientID string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE client_id = $1 ORDER BY created_at DESC`
	return r.queryServices(query, clientID)
}

func (r *ServiceRepo) queryServices(query string, args ...any) ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.ServiceType, &s.Amount, &s.Currency, &s.Recurring,
			&s.BillingCycle, &s.AssignedCSMID, &s.StartDate, &s.GoLiveDate, &s.InvoiceDate,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update updates a service.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services
		SET service_type = $2, amount = $3, currency = $4, recurring = $5,
		    billing_cycle = NULLIF($6, ''), assigned_csm_id = NULLIF($7, '')::UUID,
		    start_date = $8, go_live_date = $9, invoice_date = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		service.ID, service.ServiceType, service.Amount, service.Currency, service.Recurring,
		service.BillingCycle, service.AssignedCSMID,
		service.StartDate, service.GoLiveDate, service.InvoiceDate, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a service by ID.
func (r *ServiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

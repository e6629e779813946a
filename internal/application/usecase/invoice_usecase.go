package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// InvoiceUseCase CRUD use cases for standard invoices.
type InvoiceUseCase struct {
	repo       repository.InvoiceRepository
	clientRepo repository.ClientRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(repo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo}
}

// Create creates an invoice for an existing client. Status defaults to
// pending; issue date defaults to today.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || !oneOf(in.Currency, entity.Currencies) || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	if !oneOf(status, entity.InvoiceStatuses) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	issueDate := time.Now()
	if in.IssueDate != "" {
		if issueDate, err = parseDate(in.IssueDate); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Status:    status,
		IssueDate: issueDate,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID returns one invoice.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// List returns invoices with pagination.
func (uc *InvoiceUseCase) List(page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Update updates an invoice.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !oneOf(in.Currency, entity.Currencies) || !oneOf(in.Status, entity.InvoiceStatuses) || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	if in.IssueDate != "" {
		if invoice.IssueDate, err = parseDate(in.IssueDate); err != nil {
			return nil, err
		}
	}
	invoice.Amount = in.Amount
	invoice.Currency = in.Currency
	invoice.Status = in.Status
	invoice.DueDate = dueDate
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete removes an invoice.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		ClientID:  inv.ClientID,
		Amount:    inv.Amount,
		Currency:  inv.Currency,
		Status:    inv.Status,
		IssueDate: inv.IssueDate,
		DueDate:   inv.DueDate,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// CrInvoiceUseCase CRUD use cases for Change Request invoices.
type CrInvoiceUseCase struct {
	repo       repository.CrInvoiceRepository
	clientRepo repository.ClientRepository
}

// NewCrInvoiceUseCase builds the use case.
func NewCrInvoiceUseCase(repo repository.CrInvoiceRepository, clientRepo repository.ClientRepository) *CrInvoiceUseCase {
	return &CrInvoiceUseCase{repo: repo, clientRepo: clientRepo}
}

// Create creates a CR invoice. CrNumber must be unique; duplicates return
// ErrDuplicate. Status defaults to initiated.
func (uc *CrInvoiceUseCase) Create(in dto.CreateCrInvoiceRequest) (*dto.CrInvoiceResponse, error) {
	if in.ClientID == "" || in.CrNumber == "" || !oneOf(in.Currency, entity.Currencies) || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CrInvoiceStatusInitiated
	}
	if !oneOf(status, entity.CrInvoiceStatuses) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	existing, _ := uc.repo.GetByCrNumber(in.CrNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
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
	invoice := &entity.CrInvoice{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		CrNumber:    in.CrNumber,
		Description: in.Description,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Status:      status,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return toCrInvoiceResponse(invoice), nil
}

// GetByID returns one CR invoice.
func (uc *CrInvoiceUseCase) GetByID(id string) (*dto.CrInvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toCrInvoiceResponse(invoice), nil
}

// List returns CR invoices with pagination.
func (uc *CrInvoiceUseCase) List(page dto.PageRequest) ([]*dto.CrInvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CrInvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toCrInvoiceResponse(inv))
	}
	return out, nil
}

// Update updates a CR invoice.
func (uc *CrInvoiceUseCase) Update(id string, in dto.UpdateCrInvoiceRequest) (*dto.CrInvoiceResponse, error) {
	if in.CrNumber == "" || !oneOf(in.Currency, entity.Currencies) || !oneOf(in.Status, entity.CrInvoiceStatuses) || in.Amount.IsNegative() {
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
	invoice.CrNumber = in.CrNumber
	invoice.Description = in.Description
	invoice.Amount = in.Amount
	invoice.Currency = in.Currency
	invoice.Status = in.Status
	invoice.DueDate = dueDate
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return toCrInvoiceResponse(invoice), nil
}

// Delete removes a CR invoice.
func (uc *CrInvoiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCrInvoiceResponse(inv *entity.CrInvoice) *dto.CrInvoiceResponse {
	return &dto.CrInvoiceResponse{
		ID:          inv.ID,
		ClientID:    inv.ClientID,
		CrNumber:    inv.CrNumber,
		Description: inv.Description,
		Amount:      inv.Amount,
		Currency:    inv.Currency,
		Status:      inv.Status,
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

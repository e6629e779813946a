package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// ServiceUseCase CRUD use cases for services (billing-line items).
type ServiceUseCase struct {
	repo       repository.ServiceRepository
	clientRepo repository.ClientRepository
}

// NewServiceUseCase builds the use case.
func NewServiceUseCase(repo repository.ServiceRepository, clientRepo repository.ClientRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, clientRepo: clientRepo}
}

func (uc *ServiceUseCase) validate(in dto.CreateServiceRequest) error {
	if in.ClientID == "" || !oneOf(in.ServiceType, entity.ServiceTypes) || !oneOf(in.Currency, entity.Currencies) {
		return domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.BillingCycle != "" && !oneOf(in.BillingCycle, entity.BillingCycles) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create creates a new service for an existing client.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	goLive, err := parseOptionalDate(in.GoLiveDate)
	if err != nil {
		return nil, err
	}
	invoiceDate, err := parseOptionalDate(in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	service := &entity.Service{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		ServiceType:   in.ServiceType,
		Amount:        in.Amount,
		Currency:      in.Currency,
		Recurring:     in.Recurring,
		BillingCycle:  in.BillingCycle,
		AssignedCSMID: in.AssignedCSMID,
		StartDate:     start,
		GoLiveDate:    goLive,
		InvoiceDate:   invoiceDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID returns one service.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(service), nil
}

// List returns services with pagination.
func (uc *ServiceUseCase) List(page dto.PageRequest) ([]*dto.ServiceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// ListByClient returns all services of one client.
func (uc *ServiceUseCase) ListByClient(clientID string) ([]*dto.ServiceResponse, error) {
	list, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// Update updates a service.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	goLive, err := parseOptionalDate(in.GoLiveDate)
	if err != nil {
		return nil, err
	}
	invoiceDate, err := parseOptionalDate(in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	service.ServiceType = in.ServiceType
	service.Amount = in.Amount
	service.Currency = in.Currency
	service.Recurring = in.Recurring
	service.BillingCycle = in.BillingCycle
	service.AssignedCSMID = in.AssignedCSMID
	service.StartDate = start
	service.GoLiveDate = goLive
	service.InvoiceDate = invoiceDate
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete removes a service.
func (uc *ServiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ServiceType:   s.ServiceType,
		Amount:        s.Amount,
		Currency:      s.Currency,
		Recurring:     s.Recurring,
		BillingCycle:  s.BillingCycle,
		AssignedCSMID: s.AssignedCSMID,
		StartDate:     s.StartDate,
		GoLiveDate:    s.GoLiveDate,
		InvoiceDate:   s.InvoiceDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

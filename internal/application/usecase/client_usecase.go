package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// ClientUseCase CRUD use cases for clients.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create creates a new client. Name and a valid industry are required;
// status defaults to active.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || !oneOf(in.Industry, entity.Industries) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	if !oneOf(status, entity.ClientStatuses) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Industry:      in.Industry,
		Status:        status,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		GSTTaxID:      in.GSTTaxID,
		AssignedCSMID: in.AssignedCSMID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID returns one client.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List returns clients with pagination.
func (uc *ClientUseCase) List(page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update updates a client.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || !oneOf(in.Industry, entity.Industries) || !oneOf(in.Status, entity.ClientStatuses) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Industry = in.Industry
	client.Status = in.Status
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.GSTTaxID = in.GSTTaxID
	client.AssignedCSMID = in.AssignedCSMID
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete removes a client. Services, agreements and invoices cascade in the DB.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Industry:      c.Industry,
		Status:        c.Status,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		GSTTaxID:      c.GSTTaxID,
		AssignedCSMID: c.AssignedCSMID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

package importer

import (
	"context"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// UseCaseCreator backs a Session with the entity use cases for creates and
// the repositories for reference snapshots, so imported rows go through
// exactly the same rules as the create endpoints.
type UseCaseCreator struct {
	clients    *usecase.ClientUseCase
	services   *usecase.ServiceUseCase
	agreements *usecase.AgreementUseCase
	users      *usecase.UserUseCase
	crInvoices *usecase.CrInvoiceUseCase

	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

var (
	_ Creator         = (*UseCaseCreator)(nil)
	_ ReferenceSource = (*UseCaseCreator)(nil)
)

// NewUseCaseCreator wires the adapter.
func NewUseCaseCreator(
	clients *usecase.ClientUseCase,
	services *usecase.ServiceUseCase,
	agreements *usecase.AgreementUseCase,
	users *usecase.UserUseCase,
	crInvoices *usecase.CrInvoiceUseCase,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) *UseCaseCreator {
	return &UseCaseCreator{
		clients:    clients,
		services:   services,
		agreements: agreements,
		users:      users,
		crInvoices: crInvoices,
		clientRepo: clientRepo,
		userRepo:   userRepo,
	}
}

func (c *UseCaseCreator) CreateClient(_ context.Context, in dto.CreateClientRequest) error {
	_, err := c.clients.Create(in)
	return err
}

func (c *UseCaseCreator) CreateService(_ context.Context, in dto.CreateServiceRequest) error {
	_, err := c.services.Create(in)
	return err
}

func (c *UseCaseCreator) CreateAgreement(ctx context.Context, in dto.CreateAgreementRequest) error {
	_, err := c.agreements.Create(ctx, in)
	return err
}

func (c *UseCaseCreator) CreateUser(_ context.Context, in dto.CreateUserRequest) error {
	_, err := c.users.Create(in)
	return err
}

func (c *UseCaseCreator) CreateCrInvoice(_ context.Context, in dto.CreateCrInvoiceRequest) error {
	_, err := c.crInvoices.Create(in)
	return err
}

func (c *UseCaseCreator) ClientRefs(_ context.Context) ([]ClientRef, error) {
	clients, err := c.clientRepo.ListAll()
	if err != nil {
		return nil, err
	}
	refs := make([]ClientRef, 0, len(clients))
	for _, cl := range clients {
		refs = append(refs, ClientRef{ID: cl.ID, Name: cl.Name})
	}
	return refs, nil
}

func (c *UseCaseCreator) UserRefs(_ context.Context) ([]UserRef, error) {
	users, err := c.userRepo.ListAll()
	if err != nil {
		return nil, err
	}
	refs := make([]UserRef, 0, len(users))
	for _, u := range users {
		refs = append(refs, UserRef{ID: u.ID, Email: u.Email})
	}
	return refs, nil
}

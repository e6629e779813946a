package repository

import "github.com/voyagetech/voyagecrm-api/internal/domain/entity"

// ServiceRepository defines the persistence port for Service.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	List(limit, offset int) ([]*entity.Service, error)
	ListByClient(clientID string) ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error
}

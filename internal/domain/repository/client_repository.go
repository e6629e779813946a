package repository

import "github.com/voyagetech/voyagecrm-api/internal/domain/entity"

// ClientRepository defines the persistence port for Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error) // case-insensitive exact match
	List(limit, offset int) ([]*entity.Client, error)
	ListAll() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error // cascades to services, agreements and invoices
}

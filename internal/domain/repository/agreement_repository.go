package repository

import "github.com/voyagetech/voyagecrm-api/internal/domain/entity"

// AgreementRepository defines the persistence port for Agreement.
type AgreementRepository interface {
	Create(agreement *entity.Agreement) error
	GetByID(id string) (*entity.Agreement, error)
	List(limit, offset int) ([]*entity.Agreement, error)
	ListByClient(clientID string) ([]*entity.Agreement, error)
	Update(agreement *entity.Agreement) error
	Delete(id string) error
}

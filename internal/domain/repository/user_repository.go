package repository

import "github.com/voyagetech/voyagecrm-api/internal/domain/entity"

// UserRepository defines the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error) // case-insensitive
	List(limit, offset int) ([]*entity.User, error)
	ListAll() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}

package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios del sistema.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}

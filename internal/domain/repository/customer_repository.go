package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Customer, error)
	// Search busca por nombre o teléfono (term ya normalizado).
	Search(term string, limit int) ([]*entity.Customer, error)
}

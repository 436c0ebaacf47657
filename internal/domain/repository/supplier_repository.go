package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Supplier, error)
}

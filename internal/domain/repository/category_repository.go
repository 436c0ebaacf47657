package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// CategoryWithCount categoría más el número de productos que agrupa.
type CategoryWithCount struct {
	Category     entity.Category
	ProductCount int64
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
	ListWithCounts() ([]CategoryWithCount, error)
}

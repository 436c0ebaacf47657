package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre o código de barras; term llega ya normalizado
	// (minúsculas, sin acentos) y se compara contra la forma normalizada en SQL.
	Search(term string, limit int) ([]*entity.Product, error)
	// AdjustStock suma delta al stock (negativo para ventas). Si el resultado
	// quedara por debajo de cero retorna domain.ErrInsufficientStock y no aplica nada.
	AdjustStock(productID, delta int64) error
}

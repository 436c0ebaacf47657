package usecase

import (
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/jhoicas/ElectroPos-api/pkg/textutil"
)

// ProductUseCase casos de uso CRUD de productos del catálogo.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.DefaultSellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentQuantity < 0 || in.MinimumQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		Name:                in.Name,
		Barcode:             in.Barcode,
		CategoryID:          in.CategoryID,
		PurchasePrice:       in.PurchasePrice,
		DefaultSellingPrice: in.DefaultSellingPrice,
		CurrentQuantity:     in.CurrentQuantity,
		MinimumQuantity:     in.MinimumQuantity,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El stock no se toca aquí (cambia vía ventas y compras).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.PurchasePrice.IsNegative() || in.DefaultSellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product.Name = in.Name
	product.Barcode = in.Barcode
	product.CategoryID = in.CategoryID
	product.PurchasePrice = in.PurchasePrice
	product.DefaultSellingPrice = in.DefaultSellingPrice
	product.MinimumQuantity = in.MinimumQuantity
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search busca por nombre o código de barras, insensible a acentos y mayúsculas.
func (uc *ProductUseCase) Search(term string, limit int) ([]dto.ProductResponse, error) {
	term = textutil.NormalizeSearchTerm(term)
	if term == "" {
		return []dto.ProductResponse{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	products, err := uc.productRepo.Search(term, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Barcode:             p.Barcode,
		CategoryID:          p.CategoryID,
		PurchasePrice:       p.PurchasePrice,
		DefaultSellingPrice: p.DefaultSellingPrice,
		CurrentQuantity:     p.CurrentQuantity,
		MinimumQuantity:     p.MinimumQuantity,
		LowStock:            p.CurrentQuantity <= p.MinimumQuantity,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}

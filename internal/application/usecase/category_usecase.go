package usecase

import (
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create persiste una categoría nueva.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

// Update renombra o cambia la descripción de una categoría.
func (uc *CategoryUseCase) Update(id int64, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

// Delete elimina una categoría (falla si tiene productos, por FK).
func (uc *CategoryUseCase) Delete(id int64) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// List lista categorías con su conteo de productos.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	rows, err := uc.categoryRepo.ListWithCounts()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CategoryResponse{
			ID:           row.Category.ID,
			Name:         row.Category.Name,
			Description:  row.Category.Description,
			ProductCount: row.ProductCount,
		})
	}
	return out, nil
}

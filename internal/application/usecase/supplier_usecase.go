package usecase

import (
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create persiste un proveedor nuevo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor existente.
func (uc *SupplierUseCase) Update(id int64, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier.Name = in.Name
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Address = in.Address
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id int64) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) ([]dto.SupplierResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	suppliers, err := uc.supplierRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Email:   s.Email,
		Address: s.Address,
	}
}

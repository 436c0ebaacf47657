package usecase

import (
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/jhoicas/ElectroPos-api/pkg/textutil"
)

// CustomerUseCase casos de uso CRUD de clientes. Las respuestas incluyen
// agregados históricos (pedidos, gasto) que la pantalla de caja muestra al
// seleccionar cliente; son solo presentación, no entran en ningún cálculo.
type CustomerUseCase struct {
	customerRepo  repository.CustomerRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, analyticsRepo repository.AnalyticsRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, analyticsRepo: analyticsRepo}
}

// Create persiste un cliente nuevo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return uc.toResponse(customer), nil
}

// GetByID obtiene un cliente con sus agregados.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(customer), nil
}

// Update actualiza un cliente existente.
func (uc *CustomerUseCase) Update(id int64, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return uc.toResponse(customer), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customerRepo.Delete(id)
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) ([]dto.CustomerResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	customers, err := uc.customerRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(customers), nil
}

// Search busca por nombre o teléfono (la caja usa este endpoint con F3).
func (uc *CustomerUseCase) Search(term string, limit int) ([]dto.CustomerResponse, error) {
	term = textutil.NormalizeSearchTerm(term)
	if term == "" {
		return []dto.CustomerResponse{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	customers, err := uc.customerRepo.Search(term, limit)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(customers), nil
}

func (uc *CustomerUseCase) toResponse(c *entity.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
	// Agregados best-effort: si la consulta falla, la ficha sale sin historial.
	if stats, err := uc.analyticsRepo.GetCustomerStats(c.ID); err == nil && stats != nil {
		resp.TotalOrders = stats.TotalOrders
		resp.TotalSpent = stats.TotalSpent
		resp.FirstOrderDate = stats.FirstOrderDate
		resp.LastOrderDate = stats.LastOrderDate
	}
	return resp
}

func (uc *CustomerUseCase) toResponses(customers []*entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *uc.toResponse(c))
	}
	return out
}

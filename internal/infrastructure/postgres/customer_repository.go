package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/jhoicas/ElectroPos-api/pkg/textutil"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
// name_normalized se mantiene igual que en products (búsqueda sin acentos).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO customers (name, name_normalized, phone, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		customer.Name, textutil.NormalizeSearchTerm(customer.Name), customer.Phone, customer.Email,
		customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, phone, email, created_at, updated_at FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE customers SET name = $2, name_normalized = $3, phone = $4, email = $5, updated_at = $6 WHERE id = $1`,
		customer.ID, customer.Name, textutil.NormalizeSearchTerm(customer.Name),
		customer.Phone, customer.Email, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, phone, email, created_at, updated_at
		 FROM customers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Search busca por nombre (normalizado) o teléfono.
func (r *CustomerRepo) Search(term string, limit int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, phone, email, created_at, updated_at
		 FROM customers
		 WHERE name_normalized LIKE '%' || $1 || '%' OR phone LIKE $1 || '%'
		 ORDER BY name LIMIT $2`, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y asigna su ID.
func (r *CategoryRepo) Create(category *entity.Category) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO categories (name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithCounts lista las categorías junto con cuántos productos agrupa cada una.
func (r *CategoryRepo) ListWithCounts() ([]repository.CategoryWithCount, error) {
	query := `
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryWithCount
	for rows.Next() {
		var cw repository.CategoryWithCount
		if err := rows.Scan(&cw.Category.ID, &cw.Category.Name, &cw.Category.Description,
			&cw.Category.CreatedAt, &cw.Category.UpdatedAt, &cw.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, cw)
	}
	return list, rows.Err()
}

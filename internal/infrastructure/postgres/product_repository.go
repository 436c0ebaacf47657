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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
//
// La columna name_normalized guarda el nombre en minúsculas y sin acentos;
// se mantiene en Create/Update y es contra la que compara Search.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, name_normalized, barcode, category_id, purchase_price, default_selling_price, current_quantity, minimum_quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var normalized string
	err := row.Scan(
		&p.ID, &p.Name, &normalized, &p.Barcode, &p.CategoryID,
		&p.PurchasePrice, &p.DefaultSellingPrice,
		&p.CurrentQuantity, &p.MinimumQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, name_normalized, barcode, category_id, purchase_price, default_selling_price, current_quantity, minimum_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, textutil.NormalizeSearchTerm(product.Name), product.Barcode, product.CategoryID,
		product.PurchasePrice, product.DefaultSellingPrice,
		product.CurrentQuantity, product.MinimumQuantity, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. No toca current_quantity: el stock
// se mueve solo vía AdjustStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, name_normalized = $3, barcode = $4, category_id = $5,
			purchase_price = $6, default_selling_price = $7, minimum_quantity = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, textutil.NormalizeSearchTerm(product.Name), product.Barcode, product.CategoryID,
		product.PurchasePrice, product.DefaultSellingPrice, product.MinimumQuantity, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Search busca por nombre (normalizado) o código de barras.
func (r *ProductRepo) Search(term string, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name_normalized LIKE '%' || $1 || '%' OR barcode LIKE $1 || '%'
		ORDER BY name LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// AdjustStock suma delta al stock (negativo para ventas). El UPDATE
// condicional garantiza que el stock nunca quede negativo aun con cajas
// concurrentes: si no afecta filas y el producto existe, no había stock.
func (r *ProductRepo) AdjustStock(productID, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_quantity = current_quantity + $2, updated_at = now()
		 WHERE id = $1 AND current_quantity + $2 >= 0`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(context.Background(),
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

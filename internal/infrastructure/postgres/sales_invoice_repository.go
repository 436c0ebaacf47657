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

var _ repository.SalesInvoiceRepository = (*SalesInvoiceRepo)(nil)

// SalesInvoiceRepo implementación del puerto SalesInvoiceRepository sobre PostgreSQL.
type SalesInvoiceRepo struct {
	q Querier
}

// NewSalesInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesInvoiceRepository(q Querier) *SalesInvoiceRepo {
	return &SalesInvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura y asigna invoice.ID.
func (r *SalesInvoiceRepo) Create(invoice *entity.SalesInvoice) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sales_invoices (invoice_number, customer_id, customer_name, invoice_date,
			subtotal, discount_total, tax_total, total_amount, payment_method, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		invoice.InvoiceNumber, invoice.CustomerID, invoice.CustomerName, invoice.InvoiceDate,
		invoice.Subtotal, invoice.DiscountTotal, invoice.TaxTotal, invoice.TotalAmount,
		int(invoice.PaymentMethod), invoice.CreatedBy, invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales invoice: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la factura y asigna detail.ID.
func (r *SalesInvoiceRepo) CreateDetail(detail *entity.SalesInvoiceDetail) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sales_invoice_details (invoice_id, product_id, quantity, unit_price, discount_amount, subtotal)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		detail.InvoiceID, detail.ProductID, detail.Quantity,
		detail.UnitPrice, detail.DiscountAmount, detail.Subtotal,
	).Scan(&detail.ID)
	if err != nil {
		return fmt.Errorf("insert sales invoice detail: %w", err)
	}
	return nil
}

const salesInvoiceColumns = `id, invoice_number, customer_id, customer_name, invoice_date,
	subtotal, discount_total, tax_total, total_amount, payment_method, created_by, created_at`

func scanSalesInvoice(row pgx.Row) (*entity.SalesInvoice, error) {
	var inv entity.SalesInvoice
	var paymentMethod int
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.CustomerName, &inv.InvoiceDate,
		&inv.Subtotal, &inv.DiscountTotal, &inv.TaxTotal, &inv.TotalAmount,
		&paymentMethod, &inv.CreatedBy, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.PaymentMethod = entity.PaymentMethod(paymentMethod)
	return &inv, nil
}

// GetByID obtiene la cabecera de una factura por ID.
func (r *SalesInvoiceRepo) GetByID(id int64) (*entity.SalesInvoice, error) {
	query := `SELECT ` + salesInvoiceColumns + ` FROM sales_invoices WHERE id = $1`
	inv, err := scanSalesInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales invoice: %w", err)
	}
	return inv, nil
}

// GetDetailsByInvoiceID obtiene las líneas de una factura.
func (r *SalesInvoiceRepo) GetDetailsByInvoiceID(invoiceID int64) ([]*entity.SalesInvoiceDetail, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, invoice_id, product_id, quantity, unit_price, discount_amount, subtotal
		 FROM sales_invoice_details WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get sales invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesInvoiceDetail
	for rows.Next() {
		var d entity.SalesInvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity,
			&d.UnitPrice, &d.DiscountAmount, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sales invoice detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista facturas de venta, las más recientes primero.
func (r *SalesInvoiceRepo) List(limit, offset int) ([]*entity.SalesInvoice, error) {
	query := `SELECT ` + salesInvoiceColumns + `
		FROM sales_invoices ORDER BY invoice_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesInvoice
	for rows.Next() {
		inv, err := scanSalesInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

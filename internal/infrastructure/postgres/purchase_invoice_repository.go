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

var _ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepo)(nil)

// PurchaseInvoiceRepo implementación del puerto PurchaseInvoiceRepository sobre PostgreSQL.
type PurchaseInvoiceRepo struct {
	q Querier
}

// NewPurchaseInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseInvoiceRepository(q Querier) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura de compra y asigna invoice.ID.
func (r *PurchaseInvoiceRepo) Create(invoice *entity.PurchaseInvoice) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO purchase_invoices (invoice_number, supplier_id, invoice_date, total_amount, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		invoice.InvoiceNumber, invoice.SupplierID, invoice.InvoiceDate,
		invoice.TotalAmount, invoice.CreatedBy, invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase invoice: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la factura de compra y asigna detail.ID.
func (r *PurchaseInvoiceRepo) CreateDetail(detail *entity.PurchaseInvoiceDetail) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO purchase_invoice_details (invoice_id, product_id, quantity, unit_cost, subtotal)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		detail.InvoiceID, detail.ProductID, detail.Quantity, detail.UnitCost, detail.Subtotal,
	).Scan(&detail.ID)
	if err != nil {
		return fmt.Errorf("insert purchase invoice detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura de compra por ID.
func (r *PurchaseInvoiceRepo) GetByID(id int64) (*entity.PurchaseInvoice, error) {
	var inv entity.PurchaseInvoice
	err := r.q.QueryRow(context.Background(),
		`SELECT id, invoice_number, supplier_id, invoice_date, total_amount, created_by, created_at
		 FROM purchase_invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.InvoiceNumber, &inv.SupplierID, &inv.InvoiceDate,
		&inv.TotalAmount, &inv.CreatedBy, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase invoice: %w", err)
	}
	return &inv, nil
}

// GetDetailsByInvoiceID obtiene las líneas de una factura de compra.
func (r *PurchaseInvoiceRepo) GetDetailsByInvoiceID(invoiceID int64) ([]*entity.PurchaseInvoiceDetail, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, invoice_id, product_id, quantity, unit_cost, subtotal
		 FROM purchase_invoice_details WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get purchase invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseInvoiceDetail
	for rows.Next() {
		var d entity.PurchaseInvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitCost, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase invoice detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista facturas de compra, las más recientes primero.
func (r *PurchaseInvoiceRepo) List(limit, offset int) ([]*entity.PurchaseInvoice, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, invoice_number, supplier_id, invoice_date, total_amount, created_by, created_at
		 FROM purchase_invoices ORDER BY invoice_date DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseInvoice
	for rows.Next() {
		var inv entity.PurchaseInvoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.SupplierID, &inv.InvoiceDate,
			&inv.TotalAmount, &inv.CreatedBy, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

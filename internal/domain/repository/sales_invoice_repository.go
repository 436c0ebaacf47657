package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// SalesInvoiceRepository puerto de persistencia para facturas de venta.
type SalesInvoiceRepository interface {
	// Create persiste la cabecera y asigna invoice.ID (serial).
	Create(invoice *entity.SalesInvoice) error
	CreateDetail(detail *entity.SalesInvoiceDetail) error
	GetByID(id int64) (*entity.SalesInvoice, error)
	GetDetailsByInvoiceID(invoiceID int64) ([]*entity.SalesInvoiceDetail, error)
	List(limit, offset int) ([]*entity.SalesInvoice, error)
}

package repository

import "github.com/jhoicas/ElectroPos-api/internal/domain/entity"

// PurchaseInvoiceRepository puerto de persistencia para facturas de compra.
type PurchaseInvoiceRepository interface {
	Create(invoice *entity.PurchaseInvoice) error
	CreateDetail(detail *entity.PurchaseInvoiceDetail) error
	GetByID(id int64) (*entity.PurchaseInvoice, error)
	GetDetailsByInvoiceID(invoiceID int64) ([]*entity.PurchaseInvoiceDetail, error)
	List(limit, offset int) ([]*entity.PurchaseInvoice, error)
}

package sales

import (
	"context"

	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de productos y facturas de venta: el descuento de stock y la
// persistencia de la factura son atómicos.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.SalesInvoiceRepository,
	) error) error
}

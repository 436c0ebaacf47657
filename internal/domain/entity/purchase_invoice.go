package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice representa una factura de compra a proveedor.
// Registrarla aumenta el stock de los productos comprados.
type PurchaseInvoice struct {
	ID            int64
	InvoiceNumber string
	SupplierID    int64
	InvoiceDate   time.Time
	TotalAmount   decimal.Decimal
	CreatedBy     string
	CreatedAt     time.Time
}

// PurchaseInvoiceDetail representa una línea de una factura de compra.
type PurchaseInvoiceDetail struct {
	ID        int64
	InvoiceID int64
	ProductID int64
	Quantity  int64
	UnitCost  decimal.Decimal
	Subtotal  decimal.Decimal
}

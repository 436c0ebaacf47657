package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseInvoiceRequest body para POST /api/purchase-invoices.
// Registrar la compra aumenta el stock de cada producto.
type CreatePurchaseInvoiceRequest struct {
	InvoiceNumber string                       `json:"invoice_number"`
	SupplierID    int64                        `json:"supplier_id"`
	InvoiceDate   *time.Time                   `json:"invoice_date,omitempty"`
	Details       []PurchaseInvoiceItemRequest `json:"details"`
}

// PurchaseInvoiceItemRequest línea de compra.
type PurchaseInvoiceItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// PurchaseInvoiceResponse factura de compra con detalle.
type PurchaseInvoiceResponse struct {
	ID            int64                         `json:"id"`
	InvoiceNumber string                        `json:"invoice_number"`
	SupplierID    int64                         `json:"supplier_id"`
	InvoiceDate   time.Time                     `json:"invoice_date"`
	TotalAmount   decimal.Decimal               `json:"total_amount"`
	Details       []PurchaseInvoiceItemResponse `json:"details"`
}

// PurchaseInvoiceItemResponse línea de detalle en la respuesta.
type PurchaseInvoiceItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

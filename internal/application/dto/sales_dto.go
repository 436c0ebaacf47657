package dto

import (
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateSalesInvoiceRequest body para POST /api/sales-invoices.
// Es el mismo payload que produce el carrito al cerrar la venta; también se
// acepta directo para integraciones que no pasan por la sesión de caja.
type CreateSalesInvoiceRequest struct {
	InvoiceNumber string                    `json:"invoice_number,omitempty"` // vacío = se genera
	CustomerID    *int64                    `json:"customer_id,omitempty"`
	CustomerName  string                    `json:"customer_name,omitempty"`
	InvoiceDate   *time.Time                `json:"invoice_date,omitempty"` // vacío = ahora
	DiscountTotal decimal.Decimal           `json:"discount_total"`
	PaymentMethod entity.PaymentMethod      `json:"payment_method"`
	Details       []SalesInvoiceItemRequest `json:"details"`
}

// SalesInvoiceItemRequest línea de venta.
type SalesInvoiceItemRequest struct {
	ProductID      int64           `json:"product_id"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`      // 0 = usar precio de catálogo
	DiscountAmount decimal.Decimal `json:"discount_amount"` // parte del descuento asignada a la línea
}

// SalesInvoiceResponse factura de venta con detalle.
type SalesInvoiceResponse struct {
	ID            int64                      `json:"id"`
	InvoiceNumber string                     `json:"invoice_number"`
	CustomerID    *int64                     `json:"customer_id,omitempty"`
	CustomerName  string                     `json:"customer_name,omitempty"`
	InvoiceDate   time.Time                  `json:"invoice_date"`
	Subtotal      decimal.Decimal            `json:"subtotal"`
	DiscountTotal decimal.Decimal            `json:"discount_total"`
	TaxTotal      decimal.Decimal            `json:"tax_total"`
	TotalAmount   decimal.Decimal            `json:"total_amount"`
	PaymentMethod entity.PaymentMethod       `json:"payment_method"`
	Details       []SalesInvoiceItemResponse `json:"details"`
}

// SalesInvoiceItemResponse línea de detalle en la respuesta.
type SalesInvoiceItemResponse struct {
	ProductID      int64           `json:"product_id"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en ventas. Los valores numéricos son parte
// del contrato con el frontend (enum PaymentMethod).
type PaymentMethod int

const (
	PaymentCash     PaymentMethod = 0 // efectivo
	PaymentCard     PaymentMethod = 1 // tarjeta
	PaymentDeferred PaymentMethod = 2 // crédito / pago mixto
)

// Valid indica si el valor pertenece al conjunto cerrado de métodos de pago.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentDeferred
}

// SalesInvoice representa la cabecera de una factura de venta.
// CustomerID es opcional: venta de mostrador sin cliente registrado
// (CustomerName guarda el nombre libre o queda vacío).
type SalesInvoice struct {
	ID            int64
	InvoiceNumber string // INV-YYYYMMDD-NNNNNN
	CustomerID    *int64
	CustomerName  string
	InvoiceDate   time.Time
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	CreatedBy     string // ID del usuario (cajero) que registró la venta
	CreatedAt     time.Time
}

// SalesInvoiceDetail representa una línea de una factura de venta.
type SalesInvoiceDetail struct {
	ID             int64
	InvoiceID      int64
	ProductID      int64
	Quantity       int64
	UnitPrice      decimal.Decimal
	DiscountAmount decimal.Decimal // parte proporcional del descuento de la venta
	Subtotal       decimal.Decimal // UnitPrice * Quantity
}

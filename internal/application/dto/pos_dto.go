package dto

import (
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest body para POST /api/pos/cart/items.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity,omitempty"` // por defecto 1
}

// SetCartQuantityRequest body para PUT /api/pos/cart/items/:productId.
type SetCartQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// SetCartDiscountRequest body para PUT /api/pos/cart/discount.
type SetCartDiscountRequest struct {
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// SetCartCustomerRequest body para PUT /api/pos/cart/customer.
// CustomerID nil + nombre vacío = consumidor final.
type SetCartCustomerRequest struct {
	CustomerID   *int64 `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
}

// SetCartPaymentRequest body para PUT /api/pos/cart/payment-method.
type SetCartPaymentRequest struct {
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
}

// CartLineResponse línea del carrito en respuestas.
type CartLineResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse estado completo del carrito para la pantalla de caja.
// Los montos van redondeados a 2 decimales (solo presentación; el motor
// conserva los valores exactos).
type CartResponse struct {
	Lines           []CartLineResponse   `json:"lines"`
	DiscountPercent decimal.Decimal      `json:"discount_percent"`
	TaxRatePercent  decimal.Decimal      `json:"tax_rate_percent"`
	CustomerID      *int64               `json:"customer_id,omitempty"`
	CustomerName    string               `json:"customer_name,omitempty"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method"`
	Subtotal        decimal.Decimal      `json:"subtotal"`
	DiscountAmount  decimal.Decimal      `json:"discount_amount"`
	TaxableAmount   decimal.Decimal      `json:"taxable_amount"`
	TaxAmount       decimal.Decimal      `json:"tax_amount"`
	Total           decimal.Decimal      `json:"total"`
}

// CheckoutResponse resultado del cierre de venta en caja.
type CheckoutResponse struct {
	Invoice SalesInvoiceResponse `json:"invoice"`
}

// StockExceededResponse cuerpo del 409 cuando se supera el stock:
// el frontend muestra "máximo disponible: N".
type StockExceededResponse struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	MaxAvailable int64  `json:"max_available"`
}

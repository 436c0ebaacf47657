package pos

import (
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRequest es la solicitud de creación de factura que produce el
// carrito al cerrar la venta. Es inmutable: el carrito puede seguir
// mutándose sin afectar una solicitud ya emitida.
//
// Aquí (y solo aquí) los montos se redondean a 2 decimales, con redondeo
// mitad-lejos-de-cero (semántica de decimal.Round).
type InvoiceRequest struct {
	InvoiceNumber string
	CustomerID    *int64
	CustomerName  string
	InvoiceDate   time.Time
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	TotalAmount   decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Details       []InvoiceRequestDetail
}

// InvoiceRequestDetail es una línea de la solicitud de factura.
// DiscountAmount es la parte proporcional del descuento global que
// corresponde a la línea según su peso en el subtotal.
type InvoiceRequestDetail struct {
	ProductID      int64
	Quantity       int64
	UnitPrice      decimal.Decimal
	DiscountAmount decimal.Decimal
}

// ToInvoiceRequest convierte el estado actual del carrito en una solicitud
// de factura. Retorna ErrEmptyCart si no hay líneas: nunca se intenta
// facturar un carrito vacío.
//
// El descuento se reparte proporcionalmente entre las líneas; la última
// línea absorbe el residuo de redondeo para que la suma de los descuentos
// por línea sea exactamente igual a DiscountTotal. Ningún descuento por
// línea queda negativo: si todas las partes previas redondearon hacia
// arriba, el exceso se descuenta de las líneas anteriores.
func (c *Cart) ToInvoiceRequest(invoiceNumber string, date time.Time) (*InvoiceRequest, error) {
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	totals := c.Totals()
	discountTotal := totals.DiscountAmount.Round(2)

	details := make([]InvoiceRequestDetail, 0, len(c.lines))
	assigned := decimal.Zero
	for i, line := range c.lines {
		var lineDiscount decimal.Decimal
		if discountTotal.IsZero() {
			lineDiscount = decimal.Zero
		} else if i == len(c.lines)-1 {
			lineDiscount = discountTotal.Sub(assigned)
		} else {
			lineDiscount = line.Subtotal().Div(totals.Subtotal).Mul(discountTotal).Round(2)
			assigned = assigned.Add(lineDiscount)
		}
		details = append(details, InvoiceRequestDetail{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			DiscountAmount: lineDiscount,
		})
	}

	// Residuo negativo (todas las partes previas redondearon hacia arriba):
	// la última línea se deja en cero y el exceso se resta hacia atrás.
	last := len(details) - 1
	if details[last].DiscountAmount.IsNegative() {
		excess := details[last].DiscountAmount.Neg()
		details[last].DiscountAmount = decimal.Zero
		for i := last - 1; i >= 0 && excess.IsPositive(); i-- {
			take := decimal.Min(details[i].DiscountAmount, excess)
			details[i].DiscountAmount = details[i].DiscountAmount.Sub(take)
			excess = excess.Sub(take)
		}
	}

	return &InvoiceRequest{
		InvoiceNumber: invoiceNumber,
		CustomerID:    c.customerID,
		CustomerName:  c.customerName,
		InvoiceDate:   date,
		Subtotal:      totals.Subtotal.Round(2),
		DiscountTotal: discountTotal,
		TaxTotal:      totals.TaxAmount.Round(2),
		TotalAmount:   totals.Total.Round(2),
		PaymentMethod: c.paymentMethod,
		Details:       details,
	}, nil
}

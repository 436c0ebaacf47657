// Package pos implementa el motor de carrito del punto de venta: acumula
// líneas de venta, aplica el tope de stock por producto y deriva los totales
// (subtotal, descuento, impuesto, total) con aritmética decimal.
//
// Todas las operaciones son locales y síncronas; una operación rechazada
// nunca deja el carrito a medio mutar. El motor no consulta red ni base de
// datos: el stock llega como snapshot de solo lectura en cada llamada
// mutadora y la verdad del inventario vive fuera (se revalida al facturar).
package pos

import (
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductSnapshot es la foto del producto que el caller entrega en cada
// operación mutadora: precio y stock vigentes en ese instante.
type ProductSnapshot struct {
	ID             int64
	Name           string
	UnitPrice      decimal.Decimal
	AvailableStock int64
}

// LineItem es una línea del carrito. Un producto aparece a lo sumo una vez.
type LineItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Subtotal devuelve UnitPrice * Quantity (sin redondear).
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Totals agrupa los montos derivados del carrito. Los valores intermedios
// no se redondean; el redondeo a 2 decimales ocurre solo al construir la
// solicitud de factura (ToInvoiceRequest) o al presentar en pantalla.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Cart es el carrito de una sesión de caja. Mantiene las líneas en orden de
// inserción (solo para presentación), el descuento global en porcentaje,
// la tasa de impuesto y la selección de cliente y método de pago.
//
// Cart no es seguro para uso concurrente: el caller debe serializar el
// acceso (una caja = un operador).
type Cart struct {
	lines           []*LineItem
	index           map[int64]*LineItem
	discountPercent decimal.Decimal
	taxRate         decimal.Decimal // porcentaje, ej. 15 para IVA 15%
	customerID      *int64
	customerName    string // nombre libre para venta de mostrador; vacío = consumidor final
	paymentMethod   entity.PaymentMethod
}

// NewCart crea un carrito vacío con la tasa de impuesto indicada (porcentaje).
func NewCart(taxRate decimal.Decimal) *Cart {
	return &Cart{
		index:         make(map[int64]*LineItem),
		taxRate:       taxRate,
		paymentMethod: entity.PaymentCash,
	}
}

// AddItem agrega qty unidades del producto al carrito. Si el producto ya
// está, incrementa su cantidad en lugar de crear una línea duplicada.
// Si la cantidad resultante supera snap.AvailableStock retorna
// ErrStockExceeded y el carrito queda intacto.
func (c *Cart) AddItem(snap ProductSnapshot, qty int64) error {
	if qty < 1 {
		return domain.ErrInvalidInput
	}
	if existing, ok := c.index[snap.ID]; ok {
		newQty := existing.Quantity + qty
		if newQty > snap.AvailableStock {
			return domain.ErrStockExceeded
		}
		existing.Quantity = newQty
		return nil
	}
	if qty > snap.AvailableStock {
		return domain.ErrStockExceeded
	}
	line := &LineItem{
		ProductID: snap.ID,
		Name:      snap.Name,
		UnitPrice: snap.UnitPrice,
		Quantity:  qty,
	}
	c.lines = append(c.lines, line)
	c.index[snap.ID] = line
	return nil
}

// SetQuantity fija la cantidad de una línea existente. Con qty <= 0 elimina
// la línea (no persisten líneas en cero). Con qty mayor al stock del snapshot
// retorna ErrStockExceeded sin modificar nada. Si el producto no está en el
// carrito retorna ErrNotFound.
func (c *Cart) SetQuantity(productID, qty int64, snap ProductSnapshot) error {
	line, ok := c.index[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if qty <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	if qty > snap.AvailableStock {
		return domain.ErrStockExceeded
	}
	line.Quantity = qty
	return nil
}

// RemoveItem elimina la línea del producto. Es idempotente: si no existe,
// no hace nada.
func (c *Cart) RemoveItem(productID int64) {
	if _, ok := c.index[productID]; !ok {
		return
	}
	delete(c.index, productID)
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// Clear vacía el carrito y restaura descuento, cliente y método de pago a
// sus valores por defecto. La tasa de impuesto se conserva.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[int64]*LineItem)
	c.discountPercent = decimal.Zero
	c.customerID = nil
	c.customerName = ""
	c.paymentMethod = entity.PaymentCash
}

// SetDiscountPercent fija el descuento global. Valores fuera de [0, 100] se
// rechazan con ErrInvalidDiscount (sin recorte silencioso) y el descuento
// anterior se conserva.
func (c *Cart) SetDiscountPercent(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidDiscount
	}
	c.discountPercent = pct
	return nil
}

// SetCustomer asocia un cliente registrado (id) o un nombre libre de
// mostrador. Con id nil y nombre vacío la venta queda como consumidor final.
func (c *Cart) SetCustomer(id *int64, name string) {
	c.customerID = id
	c.customerName = name
}

// SetPaymentMethod fija el método de pago. Valores fuera del conjunto
// cerrado se rechazan con ErrInvalidInput.
func (c *Cart) SetPaymentMethod(m entity.PaymentMethod) error {
	if !m.Valid() {
		return domain.ErrInvalidInput
	}
	c.paymentMethod = m
	return nil
}

// Totals deriva los montos del estado actual. Es una función pura: dos
// llamadas sin mutación intermedia producen exactamente el mismo resultado.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	hundred := decimal.NewFromInt(100)
	discountAmount := subtotal.Mul(c.discountPercent).Div(hundred)
	taxableAmount := subtotal.Sub(discountAmount)
	taxAmount := taxableAmount.Mul(c.taxRate).Div(hundred)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxableAmount,
		TaxAmount:      taxAmount,
		Total:          taxableAmount.Add(taxAmount),
	}
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Quantity devuelve la cantidad actual del producto (0 si no está).
func (c *Cart) Quantity(productID int64) int64 {
	if line, ok := c.index[productID]; ok {
		return line.Quantity
	}
	return 0
}

// DiscountPercent devuelve el descuento global vigente.
func (c *Cart) DiscountPercent() decimal.Decimal { return c.discountPercent }

// TaxRate devuelve la tasa de impuesto del carrito (porcentaje).
func (c *Cart) TaxRate() decimal.Decimal { return c.taxRate }

// PaymentMethod devuelve el método de pago seleccionado.
func (c *Cart) PaymentMethod() entity.PaymentMethod { return c.paymentMethod }

// CustomerID devuelve el cliente registrado seleccionado (nil si no hay).
func (c *Cart) CustomerID() *int64 { return c.customerID }

// CustomerName devuelve el nombre libre de mostrador (vacío si no aplica).
func (c *Cart) CustomerName() string { return c.customerName }

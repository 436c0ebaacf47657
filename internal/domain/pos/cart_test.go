package pos_test

import (
	"testing"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/pos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tasa de impuesto usada en los tests (IVA 15%).
var testTaxRate = decimal.NewFromInt(15)

func snap(id int64, price float64, stock int64) pos.ProductSnapshot {
	return pos.ProductSnapshot{
		ID:             id,
		Name:           "producto",
		UnitPrice:      decimal.NewFromFloat(price),
		AvailableStock: stock,
	}
}

// TestAddItem_SinDuplicados verifica que agregar varias veces el mismo
// producto produce una sola línea con la cantidad acumulada.
func TestAddItem_SinDuplicados(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	p := snap(1, 100, 10)

	require.NoError(t, cart.AddItem(p, 1))
	require.NoError(t, cart.AddItem(p, 2))
	require.NoError(t, cart.AddItem(p, 3))

	lines := cart.Lines()
	require.Len(t, lines, 1, "el mismo producto nunca genera líneas duplicadas")
	assert.Equal(t, int64(6), lines[0].Quantity)
}

// TestAddItem_TopeDeStock verifica que superar el stock del snapshot
// retorna ErrStockExceeded y deja la cantidad previa intacta.
func TestAddItem_TopeDeStock(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	p := snap(1, 100, 5)

	require.NoError(t, cart.AddItem(p, 5))
	err := cart.AddItem(p, 1)

	assert.ErrorIs(t, err, domain.ErrStockExceeded)
	assert.Equal(t, int64(5), cart.Quantity(1), "la operación rechazada no modifica el carrito")
}

// TestAddItem_TopeDeStockLineaNueva cubre el rechazo en el primer agregado
// (producto aún no presente en el carrito).
func TestAddItem_TopeDeStockLineaNueva(t *testing.T) {
	cart := pos.NewCart(testTaxRate)

	err := cart.AddItem(snap(7, 30, 2), 3)

	assert.ErrorIs(t, err, domain.ErrStockExceeded)
	assert.True(t, cart.IsEmpty())
}

// TestAddItem_CantidadInvalida verifica que qty < 1 se rechaza.
func TestAddItem_CantidadInvalida(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	assert.ErrorIs(t, cart.AddItem(snap(1, 10, 5), 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.AddItem(snap(1, 10, 5), -2), domain.ErrInvalidInput)
	assert.True(t, cart.IsEmpty())
}

// TestSetQuantity_CeroElimina verifica que fijar cantidad en 0 (o negativa)
// elimina la línea por completo: no persisten líneas en cero.
func TestSetQuantity_CeroElimina(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	p := snap(1, 100, 10)
	require.NoError(t, cart.AddItem(p, 2))

	require.NoError(t, cart.SetQuantity(1, 0, p))

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Quantity(1))
}

func TestSetQuantity_NegativaElimina(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	p := snap(1, 100, 10)
	require.NoError(t, cart.AddItem(p, 2))

	require.NoError(t, cart.SetQuantity(1, -3, p))

	assert.True(t, cart.IsEmpty())
}

// TestSetQuantity_TopeDeStock verifica el rechazo con cantidad mayor al
// stock del snapshot, conservando la cantidad previa.
func TestSetQuantity_TopeDeStock(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	p := snap(1, 100, 5)
	require.NoError(t, cart.AddItem(p, 3))

	err := cart.SetQuantity(1, 6, p)

	assert.ErrorIs(t, err, domain.ErrStockExceeded)
	assert.Equal(t, int64(3), cart.Quantity(1))
}

// TestSetQuantity_ProductoAusente: fijar cantidad de un producto que no
// está en el carrito retorna ErrNotFound.
func TestSetQuantity_ProductoAusente(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	err := cart.SetQuantity(99, 2, snap(99, 10, 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRemoveItem_Idempotente verifica que eliminar dos veces el mismo
// producto no falla ni altera el carrito después de la primera eliminación.
func TestRemoveItem_Idempotente(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 100, 10), 2))
	require.NoError(t, cart.AddItem(snap(2, 50, 10), 1))

	cart.RemoveItem(1)
	afterFirst := cart.Lines()
	cart.RemoveItem(1) // segunda eliminación: no-op

	assert.Equal(t, afterFirst, cart.Lines())
	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, int64(2), cart.Lines()[0].ProductID)
}

// TestRemoveItem_ConservaOrden verifica que el orden de inserción de las
// líneas restantes se conserva tras eliminar una intermedia.
func TestRemoveItem_ConservaOrden(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 10, 9), 1))
	require.NoError(t, cart.AddItem(snap(2, 20, 9), 1))
	require.NoError(t, cart.AddItem(snap(3, 30, 9), 1))

	cart.RemoveItem(2)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(3), lines[1].ProductID)
}

// TestTotals_VectorConcreto valida el cálculo de totales con el vector de
// referencia: A (100 x 2) + B (50 x 1), descuento 10%, IVA 15%.
// Esperado: subtotal 250, descuento 25, base 225, impuesto 33.75, total 258.75.
func TestTotals_VectorConcreto(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 100, 10), 2))
	require.NoError(t, cart.AddItem(snap(2, 50, 10), 1))
	require.NoError(t, cart.SetDiscountPercent(decimal.NewFromInt(10)))

	totals := cart.Totals()

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(25)), "descuento = %s", totals.DiscountAmount)
	assert.True(t, totals.TaxableAmount.Equal(decimal.NewFromInt(225)), "base = %s", totals.TaxableAmount)
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(33.75)), "impuesto = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(258.75)), "total = %s", totals.Total)
}

// TestTotals_Determinista verifica que dos llamadas sin mutación intermedia
// producen exactamente los mismos montos (función pura, sin estado oculto).
func TestTotals_Determinista(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 19.99, 50), 3))
	require.NoError(t, cart.AddItem(snap(2, 7.35, 50), 7))
	require.NoError(t, cart.SetDiscountPercent(decimal.NewFromFloat(12.5)))

	t1 := cart.Totals()
	t2 := cart.Totals()

	assert.True(t, t1.Subtotal.Equal(t2.Subtotal))
	assert.True(t, t1.DiscountAmount.Equal(t2.DiscountAmount))
	assert.True(t, t1.TaxableAmount.Equal(t2.TaxableAmount))
	assert.True(t, t1.TaxAmount.Equal(t2.TaxAmount))
	assert.True(t, t1.Total.Equal(t2.Total))
}

// TestTotals_CarritoVacio: todos los montos en cero.
func TestTotals_CarritoVacio(t *testing.T) {
	totals := pos.NewCart(testTaxRate).Totals()
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

// TestSetDiscountPercent_Bordes: 0 y 100 son válidos; -1 y 101 se rechazan
// con ErrInvalidDiscount conservando el valor anterior.
func TestSetDiscountPercent_Bordes(t *testing.T) {
	cart := pos.NewCart(testTaxRate)

	assert.NoError(t, cart.SetDiscountPercent(decimal.Zero))
	assert.NoError(t, cart.SetDiscountPercent(decimal.NewFromInt(100)))

	assert.ErrorIs(t, cart.SetDiscountPercent(decimal.NewFromInt(-1)), domain.ErrInvalidDiscount)
	assert.ErrorIs(t, cart.SetDiscountPercent(decimal.NewFromInt(101)), domain.ErrInvalidDiscount)

	// El último valor válido (100) se conserva tras los rechazos.
	assert.True(t, cart.DiscountPercent().Equal(decimal.NewFromInt(100)))
}

// TestClear_RestauraDefaults verifica que Clear vacía las líneas y resetea
// descuento, cliente y método de pago.
func TestClear_RestauraDefaults(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 100, 10), 2))
	require.NoError(t, cart.SetDiscountPercent(decimal.NewFromInt(20)))
	require.NoError(t, cart.SetPaymentMethod(entity.PaymentCard))
	id := int64(4)
	cart.SetCustomer(&id, "Cliente VIP")

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.DiscountPercent().IsZero())
	assert.Equal(t, entity.PaymentCash, cart.PaymentMethod())
	assert.Nil(t, cart.CustomerID())
	assert.Empty(t, cart.CustomerName())
}

// TestSetPaymentMethod_FueraDeRango rechaza valores fuera del enum.
func TestSetPaymentMethod_FueraDeRango(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	assert.ErrorIs(t, cart.SetPaymentMethod(entity.PaymentMethod(9)), domain.ErrInvalidInput)
	assert.Equal(t, entity.PaymentCash, cart.PaymentMethod())
}

// TestToInvoiceRequest_CarritoVacio: facturar sin líneas se bloquea con
// ErrEmptyCart y no produce solicitud.
func TestToInvoiceRequest_CarritoVacio(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	req, err := cart.ToInvoiceRequest("INV-20250101-000001", time.Now())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, req)
}

// TestToInvoiceRequest_MontosRedondeados verifica cabecera y líneas con el
// vector de referencia, incluyendo el reparto proporcional del descuento.
func TestToInvoiceRequest_MontosRedondeados(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 100, 10), 2))
	require.NoError(t, cart.AddItem(snap(2, 50, 10), 1))
	require.NoError(t, cart.SetDiscountPercent(decimal.NewFromInt(10)))
	require.NoError(t, cart.SetPaymentMethod(entity.PaymentCard))

	date := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	req, err := cart.ToInvoiceRequest("INV-20250314-000042", date)
	require.NoError(t, err)

	assert.Equal(t, "INV-20250314-000042", req.InvoiceNumber)
	assert.Equal(t, date, req.InvoiceDate)
	assert.Equal(t, entity.PaymentCard, req.PaymentMethod)
	assert.Equal(t, "250", req.Subtotal.String())
	assert.Equal(t, "25", req.DiscountTotal.String())
	assert.Equal(t, "33.75", req.TaxTotal.String())
	assert.Equal(t, "258.75", req.TotalAmount.String())

	// Reparto proporcional: línea A pesa 200/250 => 20; línea B el resto => 5.
	require.Len(t, req.Details, 2)
	assert.Equal(t, "20", req.Details[0].DiscountAmount.String())
	assert.Equal(t, "5", req.Details[1].DiscountAmount.String())
}

// TestToInvoiceRequest_DescuentoSumaExacta: la suma de los descuentos por
// línea debe ser exactamente el descuento total aun cuando el reparto
// proporcional no divide parejo (la última línea absorbe el residuo).
func TestToInvoiceRequest_DescuentoSumaExacta(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 33.33, 99), 1))
	require.NoError(t, cart.AddItem(snap(2, 33.33, 99), 1))
	require.NoError(t, cart.AddItem(snap(3, 33.34, 99), 1))
	require.NoError(t, cart.SetDiscountPercent(decimal.NewFromInt(10)))

	req, err := cart.ToInvoiceRequest("INV-20250314-000043", time.Now())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, d := range req.Details {
		sum = sum.Add(d.DiscountAmount)
	}
	assert.True(t, sum.Equal(req.DiscountTotal),
		"suma por línea %s != descuento total %s", sum, req.DiscountTotal)
}

// TestToInvoiceRequest_DescuentoNuncaNegativo: cuando la parte de cada línea
// previa redondea hacia arriba, el residuo de la última saldría negativo;
// debe quedar en cero (restando el exceso de las líneas anteriores) y la
// suma debe seguir cuadrando con el descuento total.
// Vector: 4 líneas de 1.00, descuento 0.6% => total 0.024 ~ 0.02; cada parte
// 0.006 ~ 0.01, tres líneas asignan 0.03 y el residuo crudo sería -0.01.
func TestToInvoiceRequest_DescuentoNuncaNegativo(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	for i := int64(1); i <= 4; i++ {
		require.NoError(t, cart.AddItem(snap(i, 1, 10), 1))
	}
	require.NoError(t, cart.SetDiscountPercent(decimal.NewFromFloat(0.6)))

	req, err := cart.ToInvoiceRequest("INV-20250314-000046", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "0.02", req.DiscountTotal.StringFixed(2))
	sum := decimal.Zero
	for i, d := range req.Details {
		assert.False(t, d.DiscountAmount.IsNegative(),
			"línea %d con descuento negativo: %s", i, d.DiscountAmount)
		sum = sum.Add(d.DiscountAmount)
	}
	assert.True(t, sum.Equal(req.DiscountTotal),
		"suma por línea %s != descuento total %s", sum, req.DiscountTotal)
}

// TestToInvoiceRequest_SinDescuento: con descuento cero todas las líneas
// llevan descuento cero.
func TestToInvoiceRequest_SinDescuento(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 100, 10), 1))

	req, err := cart.ToInvoiceRequest("INV-20250314-000044", time.Now())
	require.NoError(t, err)
	assert.True(t, req.DiscountTotal.IsZero())
	assert.True(t, req.Details[0].DiscountAmount.IsZero())
}

// TestToInvoiceRequest_NoMutaElCarrito: emitir la solicitud no vacía ni
// altera el carrito (el reset ocurre solo tras un checkout exitoso).
func TestToInvoiceRequest_NoMutaElCarrito(t *testing.T) {
	cart := pos.NewCart(testTaxRate)
	require.NoError(t, cart.AddItem(snap(1, 100, 10), 2))

	_, err := cart.ToInvoiceRequest("INV-20250314-000045", time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(2), cart.Quantity(1))
	assert.Len(t, cart.Lines(), 1)
}

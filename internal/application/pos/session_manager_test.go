package pos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	apppos "github.com/jhoicas/ElectroPos-api/internal/application/pos"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                 { return nil }
func (f *fakeProductRepo) Delete(int64) error                           { return nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (f *fakeProductRepo) Search(string, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) AdjustStock(id, delta int64) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.CurrentQuantity+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.CurrentQuantity += delta
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCustomerRepo) Update(*entity.Customer) error              { return nil }
func (f *fakeCustomerRepo) Delete(int64) error                         { return nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error)  { return nil, nil }
func (f *fakeCustomerRepo) Search(string, int) ([]*entity.Customer, error) {
	return nil, nil
}

// fakeSalesCreator registra la última solicitud recibida y puede fallar a
// voluntad para simular errores del colaborador externo de facturación.
type fakeSalesCreator struct {
	lastRequest *dto.CreateSalesInvoiceRequest
	failWith    error
}

func (f *fakeSalesCreator) CreateInvoice(_ context.Context, userID string, in dto.CreateSalesInvoiceRequest) (*dto.SalesInvoiceResponse, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastRequest = &in
	return &dto.SalesInvoiceResponse{
		ID:            1,
		InvoiceNumber: in.InvoiceNumber,
		CustomerName:  in.CustomerName,
		DiscountTotal: in.DiscountTotal,
		PaymentMethod: in.PaymentMethod,
	}, nil
}

func newManager(t *testing.T) (*apppos.SessionManager, *fakeProductRepo, *fakeSalesCreator) {
	t.Helper()
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Teclado", DefaultSellingPrice: decimal.NewFromInt(100), CurrentQuantity: 10},
		2: {ID: 2, Name: "Mouse", DefaultSellingPrice: decimal.NewFromInt(50), CurrentQuantity: 3},
	}}
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		7: {ID: 7, Name: "Cliente Frecuente"},
	}}
	creator := &fakeSalesCreator{}
	m := apppos.NewSessionManager(decimal.NewFromInt(15), products, customers, creator)
	return m, products, creator
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// TestAddItem_SnapshotFresco: cada agregado consulta el stock vigente del
// catálogo y rechaza cuando lo supera, informando el máximo disponible.
func TestAddItem_SnapshotFresco(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	cart, err := m.AddItem(ctx, "cajero-1", 2, 3)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)

	_, err = m.AddItem(ctx, "cajero-1", 2, 1)
	require.ErrorIs(t, err, domain.ErrStockExceeded)

	var stockErr *apppos.StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(3), stockErr.MaxAvailable)
}

// TestAddItem_ProductoInexistente retorna ErrNotFound.
func TestAddItem_ProductoInexistente(t *testing.T) {
	m, _, _ := newManager(t)
	_, err := m.AddItem(context.Background(), "cajero-1", 99, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSesionesIndependientes: cada operador tiene su propio carrito.
func TestSesionesIndependientes(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	_, err := m.AddItem(ctx, "cajero-1", 1, 2)
	require.NoError(t, err)

	assert.Empty(t, m.GetCart("cajero-2").Lines)
	assert.Len(t, m.GetCart("cajero-1").Lines, 1)
}

// TestCheckout_FlujoCompleto: carrito con descuento => solicitud de factura
// con los montos del vector de referencia, y sesión vacía tras el éxito.
func TestCheckout_FlujoCompleto(t *testing.T) {
	m, _, creator := newManager(t)
	ctx := context.Background()

	_, err := m.AddItem(ctx, "cajero-1", 1, 2) // 100 x 2
	require.NoError(t, err)
	_, err = m.AddItem(ctx, "cajero-1", 2, 1) // 50 x 1
	require.NoError(t, err)
	_, err = m.SetDiscount("cajero-1", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = m.SetPaymentMethod("cajero-1", entity.PaymentCard)
	require.NoError(t, err)

	resp, err := m.Checkout(ctx, "cajero-1")
	require.NoError(t, err)
	require.NotNil(t, creator.lastRequest)

	assert.Equal(t, "25", creator.lastRequest.DiscountTotal.String())
	assert.Equal(t, entity.PaymentCard, creator.lastRequest.PaymentMethod)
	require.Len(t, creator.lastRequest.Details, 2)
	assert.Equal(t, "20", creator.lastRequest.Details[0].DiscountAmount.String())
	assert.Equal(t, "5", creator.lastRequest.Details[1].DiscountAmount.String())
	assert.Contains(t, resp.Invoice.InvoiceNumber, "INV-")

	// Tras el checkout exitoso la sesión queda vacía con defaults.
	cart := m.GetCart("cajero-1")
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.DiscountPercent.IsZero())
	assert.Equal(t, entity.PaymentCash, cart.PaymentMethod)
}

// TestCheckout_CarritoVacio se bloquea antes de llamar al colaborador.
func TestCheckout_CarritoVacio(t *testing.T) {
	m, _, creator := newManager(t)
	_, err := m.Checkout(context.Background(), "cajero-1")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, creator.lastRequest)
}

// TestCheckout_FalloExterno: si la facturación falla, el carrito queda
// intacto para reintentar sin recapturar las líneas.
func TestCheckout_FalloExterno(t *testing.T) {
	m, _, creator := newManager(t)
	ctx := context.Background()
	creator.failWith = errors.New("timeout de red")

	_, err := m.AddItem(ctx, "cajero-1", 1, 2)
	require.NoError(t, err)

	_, err = m.Checkout(ctx, "cajero-1")
	require.Error(t, err)

	cart := m.GetCart("cajero-1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)

	// Reintento tras recuperarse el colaborador.
	creator.failWith = nil
	_, err = m.Checkout(ctx, "cajero-1")
	require.NoError(t, err)
	assert.Empty(t, m.GetCart("cajero-1").Lines)
}

// TestSetCustomer_ClienteRegistrado toma el nombre del cliente si no viene
// uno libre; cliente inexistente => ErrNotFound.
func TestSetCustomer_ClienteRegistrado(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()
	id := int64(7)

	cart, err := m.SetCustomer(ctx, "cajero-1", &id, "")
	require.NoError(t, err)
	assert.Equal(t, "Cliente Frecuente", cart.CustomerName)

	missing := int64(99)
	_, err = m.SetCustomer(ctx, "cajero-1", &missing, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestTotalesRedondeadosEnRespuesta: la vista redondea a 2 decimales.
func TestTotalesRedondeadosEnRespuesta(t *testing.T) {
	m, products, _ := newManager(t)
	products.products[3] = &entity.Product{
		ID: 3, Name: "Cable", DefaultSellingPrice: decimal.NewFromFloat(3.333), CurrentQuantity: 10,
	}

	cart, err := m.AddItem(context.Background(), "cajero-1", 3, 3)
	require.NoError(t, err)

	// 3.333 * 3 = 9.999 => 10.00 en la vista
	assert.Equal(t, "10", cart.Subtotal.String())
}

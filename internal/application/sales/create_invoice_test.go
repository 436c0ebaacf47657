package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	appsales "github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
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
func (f *fakeProductRepo) GetByBarcode(string) (*entity.Product, error)  { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (f *fakeProductRepo) Delete(int64) error                            { return nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)      { return nil, nil }
func (f *fakeProductRepo) Search(string, int) ([]*entity.Product, error) { return nil, nil }
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
func (f *fakeCustomerRepo) Update(*entity.Customer) error                  { return nil }
func (f *fakeCustomerRepo) Delete(int64) error                             { return nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error)      { return nil, nil }
func (f *fakeCustomerRepo) Search(string, int) ([]*entity.Customer, error) { return nil, nil }

type fakeInvoiceRepo struct {
	nextID   int64
	invoices map[int64]*entity.SalesInvoice
	details  map[int64][]*entity.SalesInvoiceDetail
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		nextID:   1,
		invoices: make(map[int64]*entity.SalesInvoice),
		details:  make(map[int64][]*entity.SalesInvoiceDetail),
	}
}

func (f *fakeInvoiceRepo) Create(inv *entity.SalesInvoice) error {
	inv.ID = f.nextID
	f.nextID++
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}
func (f *fakeInvoiceRepo) CreateDetail(d *entity.SalesInvoiceDetail) error {
	cp := *d
	f.details[d.InvoiceID] = append(f.details[d.InvoiceID], &cp)
	return nil
}
func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.SalesInvoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	return inv, nil
}
func (f *fakeInvoiceRepo) GetDetailsByInvoiceID(invoiceID int64) ([]*entity.SalesInvoiceDetail, error) {
	return f.details[invoiceID], nil
}
func (f *fakeInvoiceRepo) List(limit, offset int) ([]*entity.SalesInvoice, error) {
	out := make([]*entity.SalesInvoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	return out, nil
}

// fakeTxRunner simula la transacción: pasa los repos en memoria a fn y, si
// fn falla, restaura el stock previo (el rollback de la base real).
type fakeTxRunner struct {
	products *fakeProductRepo
	invoices *fakeInvoiceRepo
}

func (f *fakeTxRunner) RunSales(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invoiceRepo repository.SalesInvoiceRepository,
) error) error {
	before := make(map[int64]int64, len(f.products.products))
	for id, p := range f.products.products {
		before[id] = p.CurrentQuantity
	}
	if err := fn(f.products, f.invoices); err != nil {
		for id, qty := range before {
			f.products.products[id].CurrentQuantity = qty
		}
		return err
	}
	return nil
}

func newUseCase(t *testing.T) (*appsales.CreateSalesInvoiceUseCase, *fakeProductRepo, *fakeInvoiceRepo) {
	t.Helper()
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Teclado", DefaultSellingPrice: decimal.NewFromInt(100), CurrentQuantity: 10},
		2: {ID: 2, Name: "Mouse", DefaultSellingPrice: decimal.NewFromInt(50), CurrentQuantity: 2},
	}}
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		7: {ID: 7, Name: "Cliente Frecuente"},
	}}
	invoices := newFakeInvoiceRepo()
	runner := &fakeTxRunner{products: products, invoices: invoices}
	uc := appsales.NewCreateSalesInvoiceUseCase(runner, products, customers, invoices, decimal.NewFromInt(15))
	return uc, products, invoices
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// TestCreateInvoice_DescuentaStockYPersiste: venta exitosa => stock
// descontado, cabecera y detalles persistidos, totales con IVA 15%.
func TestCreateInvoice_DescuentaStockYPersiste(t *testing.T) {
	uc, products, invoices := newUseCase(t)

	resp, err := uc.CreateInvoice(context.Background(), "cajero-1", dto.CreateSalesInvoiceRequest{
		PaymentMethod: entity.PaymentCash,
		Details: []dto.SalesInvoiceItemRequest{
			{ProductID: 1, Quantity: 2}, // precio catálogo: 100
			{ProductID: 2, Quantity: 1}, // precio catálogo: 50
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "250", resp.Subtotal.String())
	assert.Equal(t, "37.5", resp.TaxTotal.String())
	assert.Equal(t, "287.5", resp.TotalAmount.String())
	assert.Contains(t, resp.InvoiceNumber, "INV-")
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "100", resp.Details[0].UnitPrice.String())

	assert.Equal(t, int64(8), products.products[1].CurrentQuantity)
	assert.Equal(t, int64(1), products.products[2].CurrentQuantity)
	assert.Len(t, invoices.invoices, 1)
	assert.Len(t, invoices.details[resp.ID], 2)
}

// TestCreateInvoice_SinStock_Rollback: una línea sin stock suficiente hace
// rollback completo; ninguna factura queda persistida y el stock no cambia.
func TestCreateInvoice_SinStock_Rollback(t *testing.T) {
	uc, products, invoices := newUseCase(t)

	_, err := uc.CreateInvoice(context.Background(), "cajero-1", dto.CreateSalesInvoiceRequest{
		PaymentMethod: entity.PaymentCash,
		Details: []dto.SalesInvoiceItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 5}, // stock: 2
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), products.products[1].CurrentQuantity)
	assert.Equal(t, int64(2), products.products[2].CurrentQuantity)
	assert.Empty(t, invoices.invoices)
}

// TestCreateInvoice_ClienteRegistrado toma el nombre del catálogo de clientes.
func TestCreateInvoice_ClienteRegistrado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	id := int64(7)

	resp, err := uc.CreateInvoice(context.Background(), "cajero-1", dto.CreateSalesInvoiceRequest{
		CustomerID:    &id,
		PaymentMethod: entity.PaymentCard,
		Details:       []dto.SalesInvoiceItemRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cliente Frecuente", resp.CustomerName)
}

// TestCreateInvoice_Validaciones: entradas inválidas se rechazan antes de
// tocar la transacción.
func TestCreateInvoice_Validaciones(t *testing.T) {
	uc, _, invoices := newUseCase(t)
	ctx := context.Background()

	casos := []struct {
		nombre string
		in     dto.CreateSalesInvoiceRequest
		want   error
	}{
		{"sin líneas", dto.CreateSalesInvoiceRequest{PaymentMethod: entity.PaymentCash}, domain.ErrInvalidInput},
		{"cantidad cero", dto.CreateSalesInvoiceRequest{
			PaymentMethod: entity.PaymentCash,
			Details:       []dto.SalesInvoiceItemRequest{{ProductID: 1, Quantity: 0}},
		}, domain.ErrInvalidInput},
		{"método de pago inválido", dto.CreateSalesInvoiceRequest{
			PaymentMethod: entity.PaymentMethod(9),
			Details:       []dto.SalesInvoiceItemRequest{{ProductID: 1, Quantity: 1}},
		}, domain.ErrInvalidInput},
		{"producto inexistente", dto.CreateSalesInvoiceRequest{
			PaymentMethod: entity.PaymentCash,
			Details:       []dto.SalesInvoiceItemRequest{{ProductID: 99, Quantity: 1}},
		}, domain.ErrNotFound},
		{"descuento mayor al subtotal", dto.CreateSalesInvoiceRequest{
			PaymentMethod: entity.PaymentCash,
			DiscountTotal: decimal.NewFromInt(1000),
			Details:       []dto.SalesInvoiceItemRequest{{ProductID: 1, Quantity: 1}},
		}, domain.ErrInvalidInput},
	}
	for _, c := range casos {
		_, err := uc.CreateInvoice(ctx, "cajero-1", c.in)
		assert.ErrorIs(t, err, c.want, c.nombre)
	}
	assert.Empty(t, invoices.invoices)
}

// TestGenerateInvoiceNumber usa la fecha y los últimos 6 dígitos del
// timestamp en milisegundos.
func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	n := appsales.GenerateInvoiceNumber(now)
	assert.Regexp(t, `^INV-20260315-\d{6}$`, n)
}

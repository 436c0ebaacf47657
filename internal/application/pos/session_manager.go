// Package pos (capa de aplicación) administra las sesiones de caja: un
// carrito en memoria por operador autenticado, con acceso serializado.
//
// Los carritos son efímeros: no se persisten ni se recuperan entre
// reinicios; tras un checkout exitoso la sesión queda vacía.
package pos

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	dompos "github.com/jhoicas/ElectroPos-api/internal/domain/pos"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SessionManager mantiene un carrito por operador. Cada sesión tiene su
// propio mutex: los invariantes del motor (sin líneas duplicadas, tope de
// stock) no son seguros bajo mutación concurrente sin serializar.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session

	taxRate      decimal.Decimal
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	salesCreator SalesCreator
}

type session struct {
	mu   sync.Mutex
	cart *dompos.Cart
}

// NewSessionManager construye el administrador de sesiones de caja.
func NewSessionManager(
	taxRate decimal.Decimal,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	salesCreator SalesCreator,
) *SessionManager {
	return &SessionManager{
		sessions:     make(map[string]*session),
		taxRate:      taxRate,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		salesCreator: salesCreator,
	}
}

// sessionFor devuelve la sesión del operador, creándola vacía si no existe.
func (m *SessionManager) sessionFor(userID string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		s = &session{cart: dompos.NewCart(m.taxRate)}
		m.sessions[userID] = s
	}
	return s
}

// snapshot obtiene la foto fresca de producto para la operación mutadora.
// Cada llamada consulta el catálogo: el motor nunca asume que un snapshot
// anterior sigue vigente.
func (m *SessionManager) snapshot(productID int64) (dompos.ProductSnapshot, error) {
	product, err := m.productRepo.GetByID(productID)
	if err != nil {
		return dompos.ProductSnapshot{}, err
	}
	if product == nil {
		return dompos.ProductSnapshot{}, domain.ErrNotFound
	}
	return dompos.ProductSnapshot{
		ID:             product.ID,
		Name:           product.Name,
		UnitPrice:      product.DefaultSellingPrice,
		AvailableStock: product.CurrentQuantity,
	}, nil
}

// GetCart devuelve el estado actual del carrito del operador.
func (m *SessionManager) GetCart(userID string) *dto.CartResponse {
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return toCartResponse(s.cart)
}

// AddItem agrega qty unidades (0 = 1) del producto al carrito.
func (m *SessionManager) AddItem(ctx context.Context, userID string, productID, qty int64) (*dto.CartResponse, error) {
	if qty == 0 {
		qty = 1
	}
	snap, err := m.snapshot(productID)
	if err != nil {
		return nil, err
	}
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.AddItem(snap, qty); err != nil {
		if errors.Is(err, domain.ErrStockExceeded) {
			return nil, &StockExceededError{ProductID: productID, MaxAvailable: snap.AvailableStock}
		}
		return nil, err
	}
	return toCartResponse(s.cart), nil
}

// SetQuantity fija la cantidad de una línea; qty <= 0 la elimina.
func (m *SessionManager) SetQuantity(ctx context.Context, userID string, productID, qty int64) (*dto.CartResponse, error) {
	snap, err := m.snapshot(productID)
	if err != nil {
		return nil, err
	}
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.SetQuantity(productID, qty, snap); err != nil {
		if errors.Is(err, domain.ErrStockExceeded) {
			return nil, &StockExceededError{ProductID: productID, MaxAvailable: snap.AvailableStock}
		}
		return nil, err
	}
	return toCartResponse(s.cart), nil
}

// RemoveItem elimina la línea del producto (idempotente).
func (m *SessionManager) RemoveItem(userID string, productID int64) *dto.CartResponse {
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
	return toCartResponse(s.cart)
}

// Clear vacía el carrito del operador.
func (m *SessionManager) Clear(userID string) *dto.CartResponse {
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return toCartResponse(s.cart)
}

// SetDiscount fija el descuento global del carrito.
func (m *SessionManager) SetDiscount(userID string, pct decimal.Decimal) (*dto.CartResponse, error) {
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.SetDiscountPercent(pct); err != nil {
		return nil, err
	}
	return toCartResponse(s.cart), nil
}

// SetCustomer asocia un cliente registrado o un nombre libre de mostrador.
func (m *SessionManager) SetCustomer(ctx context.Context, userID string, customerID *int64, name string) (*dto.CartResponse, error) {
	if customerID != nil {
		customer, err := m.customerRepo.GetByID(*customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		if name == "" {
			name = customer.Name
		}
	}
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetCustomer(customerID, name)
	return toCartResponse(s.cart), nil
}

// SetPaymentMethod fija el método de pago del carrito.
func (m *SessionManager) SetPaymentMethod(userID string, method entity.PaymentMethod) (*dto.CartResponse, error) {
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.SetPaymentMethod(method); err != nil {
		return nil, err
	}
	return toCartResponse(s.cart), nil
}

// Checkout cierra la venta: convierte el carrito en solicitud de factura y
// la registra vía SalesCreator (que revalida stock y descuenta inventario en
// una transacción). Si la creación falla, el carrito queda intacto para
// reintentar; si tiene éxito, la sesión se vacía.
func (m *SessionManager) Checkout(ctx context.Context, userID string) (*dto.CheckoutResponse, error) {
	s := m.sessionFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	req, err := s.cart.ToInvoiceRequest(sales.GenerateInvoiceNumber(now), now)
	if err != nil {
		return nil, err
	}

	in := dto.CreateSalesInvoiceRequest{
		InvoiceNumber: req.InvoiceNumber,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		InvoiceDate:   &req.InvoiceDate,
		DiscountTotal: req.DiscountTotal,
		PaymentMethod: req.PaymentMethod,
		Details:       make([]dto.SalesInvoiceItemRequest, 0, len(req.Details)),
	}
	for _, d := range req.Details {
		in.Details = append(in.Details, dto.SalesInvoiceItemRequest{
			ProductID:      d.ProductID,
			Quantity:       d.Quantity,
			UnitPrice:      d.UnitPrice,
			DiscountAmount: d.DiscountAmount,
		})
	}

	invoice, err := m.salesCreator.CreateInvoice(ctx, userID, in)
	if err != nil {
		// El carrito no se toca: el operador puede corregir y reintentar.
		return nil, err
	}

	s.cart.Clear()
	return &dto.CheckoutResponse{Invoice: *invoice}, nil
}

// toCartResponse arma la vista del carrito con montos redondeados a 2
// decimales (solo presentación).
func toCartResponse(cart *dompos.Cart) *dto.CartResponse {
	totals := cart.Totals()
	lines := cart.Lines()
	resp := &dto.CartResponse{
		Lines:           make([]dto.CartLineResponse, 0, len(lines)),
		DiscountPercent: cart.DiscountPercent(),
		TaxRatePercent:  cart.TaxRate(),
		CustomerID:      cart.CustomerID(),
		CustomerName:    cart.CustomerName(),
		PaymentMethod:   cart.PaymentMethod(),
		Subtotal:        totals.Subtotal.Round(2),
		DiscountAmount:  totals.DiscountAmount.Round(2),
		TaxableAmount:   totals.TaxableAmount.Round(2),
		TaxAmount:       totals.TaxAmount.Round(2),
		Total:           totals.Total.Round(2),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, dto.CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().Round(2),
		})
	}
	return resp
}

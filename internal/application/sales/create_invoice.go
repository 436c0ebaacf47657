package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CreateSalesInvoiceUseCase registra una venta: valida líneas, descuenta el
// stock de cada producto y persiste cabecera y detalles en una sola
// transacción. Si algún producto se queda sin stock se hace rollback
// completo y la factura no existe.
type CreateSalesInvoiceUseCase struct {
	txRunner     SalesTxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.SalesInvoiceRepository
	taxRate      decimal.Decimal // porcentaje (ej. 15)
}

// NewCreateSalesInvoiceUseCase construye el caso de uso.
func NewCreateSalesInvoiceUseCase(
	txRunner SalesTxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.SalesInvoiceRepository,
	taxRate decimal.Decimal,
) *CreateSalesInvoiceUseCase {
	return &CreateSalesInvoiceUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		taxRate:      taxRate,
	}
}

// GenerateInvoiceNumber genera un número de factura INV-YYYYMMDD-NNNNNN
// (NNNNNN: últimos 6 dígitos del timestamp en milisegundos, como numera el
// punto de venta).
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%06d", now.Format("20060102"), now.UnixMilli()%1_000_000)
}

// CreateInvoice registra la venta. userID es el cajero autenticado.
func (uc *CreateSalesInvoiceUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreateSalesInvoiceRequest) (*dto.SalesInvoiceResponse, error) {
	if len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.PaymentMethod.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Cliente registrado (opcional): validar y tomar su nombre si no viene uno libre.
	customerName := in.CustomerName
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		if customerName == "" {
			customerName = customer.Name
		}
	}

	// Validar productos y precios (fuera de la tx, solo lectura).
	for i := range in.Details {
		item := &in.Details[i]
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() || item.DiscountAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = product.DefaultSellingPrice
		}
	}

	now := time.Now()
	invoiceDate := now
	if in.InvoiceDate != nil {
		invoiceDate = *in.InvoiceDate
	}
	number := in.InvoiceNumber
	if number == "" {
		number = GenerateInvoiceNumber(now)
	}

	// Totales: subtotal por líneas, descuento de cabecera, impuesto sobre la base.
	subtotal := decimal.Zero
	for _, item := range in.Details {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}
	if in.DiscountTotal.GreaterThan(subtotal) {
		return nil, domain.ErrInvalidInput
	}
	hundred := decimal.NewFromInt(100)
	taxable := subtotal.Sub(in.DiscountTotal)
	taxTotal := taxable.Mul(uc.taxRate).Div(hundred)
	total := taxable.Add(taxTotal)

	inv := &entity.SalesInvoice{
		InvoiceNumber: number,
		CustomerID:    in.CustomerID,
		CustomerName:  customerName,
		InvoiceDate:   invoiceDate,
		Subtotal:      subtotal.Round(2),
		DiscountTotal: in.DiscountTotal.Round(2),
		TaxTotal:      taxTotal.Round(2),
		TotalAmount:   total.Round(2),
		PaymentMethod: in.PaymentMethod,
		CreatedBy:     userID,
		CreatedAt:     now,
	}

	var details []*entity.SalesInvoiceDetail
	err := uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.SalesInvoiceRepository,
	) error {
		// 1) Descontar stock por línea; sin stock => rollback (atomicidad).
		for _, item := range in.Details {
			if err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		// 2) Cabecera (asigna inv.ID) y detalles.
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range in.Details {
			detail := &entity.SalesInvoiceDetail{
				InvoiceID:      inv.ID,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				UnitPrice:      item.UnitPrice,
				DiscountAmount: item.DiscountAmount,
				Subtotal:       item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)).Round(2),
			}
			if err := invoiceRepo.CreateDetail(detail); err != nil {
				return err
			}
			details = append(details, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(inv, details), nil
}

// GetInvoice obtiene una factura con su detalle completo.
func (uc *CreateSalesInvoiceUseCase) GetInvoice(ctx context.Context, id int64) (*dto.SalesInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toResponse(inv, details), nil
}

// ListInvoices lista facturas con paginación (sin detalle).
func (uc *CreateSalesInvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) ([]dto.SalesInvoiceResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	invoices, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toResponse(inv, nil))
	}
	return out, nil
}

func toResponse(inv *entity.SalesInvoice, details []*entity.SalesInvoiceDetail) *dto.SalesInvoiceResponse {
	resp := &dto.SalesInvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		InvoiceDate:   inv.InvoiceDate,
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		TaxTotal:      inv.TaxTotal,
		TotalAmount:   inv.TotalAmount,
		PaymentMethod: inv.PaymentMethod,
		Details:       make([]dto.SalesInvoiceItemResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SalesInvoiceItemResponse{
			ProductID:      d.ProductID,
			Quantity:       d.Quantity,
			UnitPrice:      d.UnitPrice,
			DiscountAmount: d.DiscountAmount,
			Subtotal:       d.Subtotal,
		})
	}
	return resp
}

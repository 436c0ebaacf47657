// Package purchases registra facturas de compra a proveedor: la contraparte
// de ventas, con entrada de inventario en lugar de salida.
package purchases

import (
	"context"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PurchaseTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de productos y facturas de compra.
type PurchaseTxRunner interface {
	RunPurchases(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.PurchaseInvoiceRepository,
	) error) error
}

// PurchaseInvoiceUseCase registra una compra y aumenta el stock de cada
// producto en una sola transacción.
type PurchaseInvoiceUseCase struct {
	txRunner     PurchaseTxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	invoiceRepo  repository.PurchaseInvoiceRepository
}

// NewPurchaseInvoiceUseCase construye el caso de uso.
func NewPurchaseInvoiceUseCase(
	txRunner PurchaseTxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.PurchaseInvoiceRepository,
) *PurchaseInvoiceUseCase {
	return &PurchaseInvoiceUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CreateInvoice registra la compra. userID es el usuario autenticado.
func (uc *PurchaseInvoiceUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreatePurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	if in.InvoiceNumber == "" || in.SupplierID == 0 || len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	for _, item := range in.Details {
		if item.Quantity < 1 || item.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	invoiceDate := now
	if in.InvoiceDate != nil {
		invoiceDate = *in.InvoiceDate
	}

	total := decimal.Zero
	for _, item := range in.Details {
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)))
	}

	inv := &entity.PurchaseInvoice{
		InvoiceNumber: in.InvoiceNumber,
		SupplierID:    in.SupplierID,
		InvoiceDate:   invoiceDate,
		TotalAmount:   total.Round(2),
		CreatedBy:     userID,
		CreatedAt:     now,
	}

	var details []*entity.PurchaseInvoiceDetail
	err = uc.txRunner.RunPurchases(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.PurchaseInvoiceRepository,
	) error {
		// Entrada de inventario por línea y persistencia de la factura.
		for _, item := range in.Details {
			if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range in.Details {
			detail := &entity.PurchaseInvoiceDetail{
				InvoiceID: inv.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
				Subtotal:  item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)).Round(2),
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

// GetInvoice obtiene una factura de compra con su detalle.
func (uc *PurchaseInvoiceUseCase) GetInvoice(ctx context.Context, id int64) (*dto.PurchaseInvoiceResponse, error) {
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

// ListInvoices lista facturas de compra con paginación (sin detalle).
func (uc *PurchaseInvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) ([]dto.PurchaseInvoiceResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	invoices, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toResponse(inv, nil))
	}
	return out, nil
}

func toResponse(inv *entity.PurchaseInvoice, details []*entity.PurchaseInvoiceDetail) *dto.PurchaseInvoiceResponse {
	resp := &dto.PurchaseInvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		SupplierID:    inv.SupplierID,
		InvoiceDate:   inv.InvoiceDate,
		TotalAmount:   inv.TotalAmount,
		Details:       make([]dto.PurchaseInvoiceItemResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.PurchaseInvoiceItemResponse{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitCost:  d.UnitCost,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}

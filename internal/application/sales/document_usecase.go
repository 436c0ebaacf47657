package sales

import (
	"context"

	"github.com/jhoicas/ElectroPos-api/internal/domain"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

// InvoiceLineForDocument línea de factura enriquecida con el nombre del
// producto, para los generadores de documentos (PDF/XML).
type InvoiceLineForDocument struct {
	Detail      *entity.SalesInvoiceDetail
	ProductName string
}

// InvoicePDFGenerator genera el recibo imprimible de una venta.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.SalesInvoice, lines []InvoiceLineForDocument) ([]byte, error)
}

// InvoiceXMLBuilder genera la representación XML de la venta (importación
// a sistemas contables externos).
type InvoiceXMLBuilder interface {
	Build(invoice *entity.SalesInvoice, lines []InvoiceLineForDocument) ([]byte, error)
}

// DocumentUseCase arma los documentos descargables de una factura de venta.
type DocumentUseCase struct {
	invoiceRepo repository.SalesInvoiceRepository
	productRepo repository.ProductRepository
	pdfGen      InvoicePDFGenerator
	xmlBuilder  InvoiceXMLBuilder
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	invoiceRepo repository.SalesInvoiceRepository,
	productRepo repository.ProductRepository,
	pdfGen InvoicePDFGenerator,
	xmlBuilder InvoiceXMLBuilder,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		pdfGen:      pdfGen,
		xmlBuilder:  xmlBuilder,
	}
}

func (uc *DocumentUseCase) load(id int64) (*entity.SalesInvoice, []InvoiceLineForDocument, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(id)
	if err != nil {
		return nil, nil, err
	}
	lines := make([]InvoiceLineForDocument, 0, len(details))
	for _, d := range details {
		name := ""
		if product, err := uc.productRepo.GetByID(d.ProductID); err == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, InvoiceLineForDocument{Detail: d, ProductName: name})
	}
	return inv, lines, nil
}

// GetPDF devuelve el recibo PDF de la factura.
func (uc *DocumentUseCase) GetPDF(ctx context.Context, id int64) ([]byte, error) {
	inv, lines, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateInvoicePDF(ctx, inv, lines)
}

// GetXML devuelve la representación XML de la factura.
func (uc *DocumentUseCase) GetXML(ctx context.Context, id int64) ([]byte, error) {
	inv, lines, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return uc.xmlBuilder.Build(inv, lines)
}

// Package pdf genera el recibo imprimible de una venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Factura + Fecha                  │
//	│  Cliente + método de pago                               │
//	│  ─────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc | Subtotal      │
//	│  ─────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / IVA / TOTAL            │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appsales "github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoInvoiceGenerator implementa sales.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct {
	storeName string
}

// NewMarotoInvoiceGenerator construye el generador. storeName encabeza el recibo.
func NewMarotoInvoiceGenerator(storeName string) *MarotoInvoiceGenerator {
	return &MarotoInvoiceGenerator{storeName: storeName}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.SalesInvoice,
	lines []appsales.InvoiceLineForDocument,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de venta", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq), número y fecha (der).
func (g *MarotoInvoiceGenerator) headerRow(invoice *entity.SalesInvoice) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Factura "+invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(invoice.InvoiceDate.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func customerRow(invoice *entity.SalesInvoice) core.Row {
	customer := invoice.CustomerName
	if customer == "" {
		customer = "Consumidor final"
	}
	return row.New(10).Add(
		col.New(7).Add(
			text.New("Cliente: "+customer, props.Text{Size: 9, Top: 2}),
		),
		col.New(5).Add(
			text.New("Pago: "+paymentLabel(invoice.PaymentMethod), props.Text{
				Size: 9, Top: 2, Align: align.Right,
			}),
		),
	)
}

func paymentLabel(m entity.PaymentMethod) string {
	switch m {
	case entity.PaymentCash:
		return "Efectivo"
	case entity.PaymentCard:
		return "Tarjeta"
	case entity.PaymentDeferred:
		return "Crédito"
	default:
		return "Otro"
	}
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", bold)),
		col.New(5).Add(text.New("Producto", bold)),
		col.New(2).Add(text.New("P. Unit", boldRight)),
		col.New(2).Add(text.New("Desc", boldRight)),
		col.New(2).Add(text.New("Subtotal", boldRight)),
	)
}

func tableDetailRows(lines []appsales.InvoiceLineForDocument) []core.Row {
	normal := props.Text{Size: 9, Top: 1}
	right := props.Text{Size: 9, Top: 1, Align: align.Right}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		d := l.Detail
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", d.Quantity), normal)),
			col.New(5).Add(text.New(l.ProductName, normal)),
			col.New(2).Add(text.New(d.UnitPrice.StringFixed(2), right)),
			col.New(2).Add(text.New(d.DiscountAmount.StringFixed(2), right)),
			col.New(2).Add(text.New(d.Subtotal.StringFixed(2), right)),
		))
	}
	return rows
}

func totalsRows(invoice *entity.SalesInvoice) []core.Row {
	label := props.Text{Size: 9, Top: 1, Align: align.Right}
	value := props.Text{Size: 9, Top: 1, Align: align.Right}
	totalLabel := props.Text{Style: fontstyle.Bold, Size: 11, Top: 1, Align: align.Right, Color: colorPrimary}
	return []core.Row{
		row.New(6).Add(
			col.New(10).Add(text.New("Subtotal", label)),
			col.New(2).Add(text.New(invoice.Subtotal.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(10).Add(text.New("Descuento", label)),
			col.New(2).Add(text.New(invoice.DiscountTotal.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(10).Add(text.New("IVA", label)),
			col.New(2).Add(text.New(invoice.TaxTotal.StringFixed(2), value)),
		),
		row.New(9).Add(
			col.New(10).Add(text.New("TOTAL A PAGAR", totalLabel)),
			col.New(2).Add(text.New(invoice.TotalAmount.StringFixed(2), totalLabel)),
		),
	}
}

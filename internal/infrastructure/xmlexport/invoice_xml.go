// Package xmlexport genera la representación XML de una factura de venta
// para importación en sistemas contables externos.
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"
	appsales "github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/domain/entity"
)

// InvoiceXMLBuilder implementa sales.InvoiceXMLBuilder con etree.
type InvoiceXMLBuilder struct{}

// NewInvoiceXMLBuilder construye el generador.
func NewInvoiceXMLBuilder() *InvoiceXMLBuilder {
	return &InvoiceXMLBuilder{}
}

// Build genera el documento XML de la factura con cabecera y líneas.
func (b *InvoiceXMLBuilder) Build(invoice *entity.SalesInvoice, lines []appsales.InvoiceLineForDocument) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("SalesInvoice")
	root.CreateElement("InvoiceNumber").SetText(invoice.InvoiceNumber)
	root.CreateElement("InvoiceDate").SetText(invoice.InvoiceDate.Format("2006-01-02T15:04:05"))

	customer := root.CreateElement("Customer")
	if invoice.CustomerID != nil {
		customer.CreateAttr("id", fmt.Sprintf("%d", *invoice.CustomerID))
	}
	name := invoice.CustomerName
	if name == "" {
		name = "Consumidor final"
	}
	customer.SetText(name)

	root.CreateElement("PaymentMethod").SetText(fmt.Sprintf("%d", invoice.PaymentMethod))

	totals := root.CreateElement("Totals")
	totals.CreateElement("Subtotal").SetText(invoice.Subtotal.StringFixed(2))
	totals.CreateElement("DiscountTotal").SetText(invoice.DiscountTotal.StringFixed(2))
	totals.CreateElement("TaxTotal").SetText(invoice.TaxTotal.StringFixed(2))
	totals.CreateElement("TotalAmount").SetText(invoice.TotalAmount.StringFixed(2))

	detailsEl := root.CreateElement("Details")
	for _, l := range lines {
		d := l.Detail
		lineEl := detailsEl.CreateElement("Line")
		lineEl.CreateAttr("productId", fmt.Sprintf("%d", d.ProductID))
		lineEl.CreateElement("ProductName").SetText(l.ProductName)
		lineEl.CreateElement("Quantity").SetText(fmt.Sprintf("%d", d.Quantity))
		lineEl.CreateElement("UnitPrice").SetText(d.UnitPrice.StringFixed(2))
		lineEl.CreateElement("DiscountAmount").SetText(d.DiscountAmount.StringFixed(2))
		lineEl.CreateElement("Subtotal").SetText(d.Subtotal.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar factura: %w", err)
	}
	return out, nil
}

package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
)

// SalesInvoiceHandler maneja las facturas de venta y sus documentos
// descargables (PDF y XML).
type SalesInvoiceHandler struct {
	createUC   *sales.CreateSalesInvoiceUseCase
	documentUC *sales.DocumentUseCase
}

// NewSalesInvoiceHandler construye el handler.
func NewSalesInvoiceHandler(createUC *sales.CreateSalesInvoiceUseCase, documentUC *sales.DocumentUseCase) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{createUC: createUC, documentUC: documentUC}
}

// Create godoc
// @Summary      Registrar factura de venta (descuenta stock)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesInvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.SalesInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales-invoices [post]
func (h *SalesInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateInvoice(c.Context(), GetUserID(c), in)
	if err != nil {
		return salesError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura de venta con detalle
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.SalesInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-invoices/{id} [get]
func (h *SalesInvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.createUC.GetInvoice(c.Context(), int64(id))
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas de venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.SalesInvoiceResponse
// @Router       /api/sales-invoices [get]
func (h *SalesInvoiceHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	out, err := h.createUC.ListInvoices(c.Context(), limit, offset)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Descargar el recibo PDF de la factura
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-invoices/{id}/pdf [get]
func (h *SalesInvoiceHandler) GetPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	data, err := h.documentUC.GetPDF(c.Context(), int64(id))
	if err != nil {
		return salesError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura-%d.pdf"`, id))
	return c.Send(data)
}

// GetXML godoc
// @Summary      Descargar la representación XML de la factura
// @Tags         sales
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-invoices/{id}/xml [get]
func (h *SalesInvoiceHandler) GetXML(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	data, err := h.documentUC.GetXML(c.Context(), int64(id))
	if err != nil {
		return salesError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura-%d.xml"`, id))
	return c.Send(data)
}

func salesError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura o producto no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para completar la venta"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "número de factura ya registrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factura inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

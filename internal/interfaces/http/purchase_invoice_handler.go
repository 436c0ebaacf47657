package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/application/purchases"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
)

// PurchaseInvoiceHandler maneja las facturas de compra a proveedor.
type PurchaseInvoiceHandler struct {
	uc *purchases.PurchaseInvoiceUseCase
}

// NewPurchaseInvoiceHandler construye el handler.
func NewPurchaseInvoiceHandler(uc *purchases.PurchaseInvoiceUseCase) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar factura de compra (aumenta stock)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseInvoiceRequest  true  "Factura de compra"
// @Success      201   {object}  dto.PurchaseInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-invoices [post]
func (h *PurchaseInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInvoice(c.Context(), GetUserID(c), in)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura de compra con detalle
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.PurchaseInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-invoices/{id} [get]
func (h *PurchaseInvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetInvoice(c.Context(), int64(id))
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas de compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.PurchaseInvoiceResponse
// @Router       /api/purchase-invoices [get]
func (h *PurchaseInvoiceHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.ListInvoices(c.Context(), limit, offset)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(out)
}

func purchaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura, proveedor o producto no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "número de factura ya registrado para este proveedor"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factura de compra inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

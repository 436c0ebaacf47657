package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	apppos "github.com/jhoicas/ElectroPos-api/internal/application/pos"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
)

// POSHandler maneja la sesión de caja del operador autenticado: el carrito
// es por usuario (GetUserID) y vive en memoria hasta el checkout.
type POSHandler struct {
	sessions *apppos.SessionManager
}

// NewPOSHandler construye el handler.
func NewPOSHandler(sessions *apppos.SessionManager) *POSHandler {
	return &POSHandler{sessions: sessions}
}

// GetCart godoc
// @Summary      Estado actual del carrito del operador
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [get]
func (h *POSHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.sessions.GetCart(GetUserID(c)))
}

// AddItem godoc
// @Summary      Agregar producto al carrito (líneas repetidas se fusionan)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.StockExceededResponse
// @Router       /api/pos/cart/items [post]
func (h *POSHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.sessions.AddItem(c.Context(), GetUserID(c), in.ProductID, in.Quantity)
	if err != nil {
		return posError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar cantidad de una línea (0 o negativa la elimina)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body       body  dto.SetCartQuantityRequest  true  "Cantidad"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.StockExceededResponse
// @Router       /api/pos/cart/items/{productId} [put]
func (h *POSHandler) SetQuantity(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId inválido"})
	}
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sessions.SetQuantity(c.Context(), GetUserID(c), int64(productID), in.Quantity)
	if err != nil {
		return posError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito (idempotente)
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart/items/{productId} [delete]
func (h *POSHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId inválido"})
	}
	return c.JSON(h.sessions.RemoveItem(GetUserID(c), int64(productID)))
}

// Clear godoc
// @Summary      Vaciar el carrito y restaurar descuento, cliente y método de pago
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [delete]
func (h *POSHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.sessions.Clear(GetUserID(c)))
}

// SetDiscount godoc
// @Summary      Fijar el descuento global del carrito (porcentaje 0-100)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCartDiscountRequest  true  "Porcentaje"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/discount [put]
func (h *POSHandler) SetDiscount(c *fiber.Ctx) error {
	var in dto.SetCartDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sessions.SetDiscount(GetUserID(c), in.DiscountPercent)
	if err != nil {
		return posError(c, err)
	}
	return c.JSON(out)
}

// SetCustomer godoc
// @Summary      Asociar cliente a la venta (registrado por ID o nombre libre)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCartCustomerRequest  true  "Cliente"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/customer [put]
func (h *POSHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.SetCartCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sessions.SetCustomer(c.Context(), GetUserID(c), in.CustomerID, in.CustomerName)
	if err != nil {
		return posError(c, err)
	}
	return c.JSON(out)
}

// SetPaymentMethod godoc
// @Summary      Fijar el método de pago (0 efectivo, 1 tarjeta, 2 crédito)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCartPaymentRequest  true  "Método de pago"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/payment-method [put]
func (h *POSHandler) SetPaymentMethod(c *fiber.Ctx) error {
	var in dto.SetCartPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sessions.SetPaymentMethod(GetUserID(c), in.PaymentMethod)
	if err != nil {
		return posError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Cerrar la venta: factura + descuento de stock transaccional
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pos/cart/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.sessions.Checkout(c.Context(), GetUserID(c))
	if err != nil {
		return posError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// posError traduce los errores del motor de carrito a HTTP. El tope de stock
// viaja con el máximo disponible para que la caja lo muestre en el aviso.
func posError(c *fiber.Ctx, err error) error {
	var stockErr *apppos.StockExceededError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.StockExceededResponse{
			Code:         "STOCK_EXCEEDED",
			Message:      fmt.Sprintf("stock insuficiente: máximo disponible %d", stockErr.MaxAvailable),
			MaxAvailable: stockErr.MaxAvailable,
		})
	}
	switch {
	case errors.Is(err, domain.ErrStockExceeded), errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_EXCEEDED", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrInvalidDiscount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DISCOUNT", Message: "el descuento debe estar entre 0 y 100"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o cliente no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Errores del motor de carrito POS.
	ErrStockExceeded   = errors.New("la cantidad solicitada supera el stock disponible")
	ErrInvalidDiscount = errors.New("porcentaje de descuento fuera del rango [0, 100]")
	ErrEmptyCart       = errors.New("el carrito está vacío")
)

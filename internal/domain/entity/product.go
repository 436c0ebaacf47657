package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// CurrentQuantity es el stock actual; se descuenta con ventas y aumenta con compras.
type Product struct {
	ID                  int64
	Name                string
	Barcode             string // código de barras, único
	CategoryID          int64
	PurchasePrice       decimal.Decimal // costo de compra al proveedor
	DefaultSellingPrice decimal.Decimal // precio de venta sugerido (el POS puede sobreescribirlo por línea)
	CurrentQuantity     int64           // stock disponible
	MinimumQuantity     int64           // umbral de alerta de stock bajo
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name                string          `json:"name"`
	Barcode             string          `json:"barcode"`
	CategoryID          int64           `json:"category_id"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
	CurrentQuantity     int64           `json:"current_quantity"`
	MinimumQuantity     int64           `json:"minimum_quantity"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// El stock no se edita aquí: cambia solo vía ventas y compras.
type UpdateProductRequest struct {
	Name                string          `json:"name"`
	Barcode             string          `json:"barcode"`
	CategoryID          int64           `json:"category_id"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
	MinimumQuantity     int64           `json:"minimum_quantity"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Barcode             string          `json:"barcode"`
	CategoryID          int64           `json:"category_id"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
	CurrentQuantity     int64           `json:"current_quantity"`
	MinimumQuantity     int64           `json:"minimum_quantity"`
	LowStock            bool            `json:"low_stock"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

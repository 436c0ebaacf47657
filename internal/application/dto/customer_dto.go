package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers (también PUT /:id).
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// CustomerResponse cliente con agregados históricos (solo presentación:
// el POS muestra pedidos y gasto acumulado al seleccionar cliente).
type CustomerResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	TotalOrders    int64           `json:"total_orders"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	FirstOrderDate *time.Time      `json:"first_order_date,omitempty"`
	LastOrderDate  *time.Time      `json:"last_order_date,omitempty"`
}

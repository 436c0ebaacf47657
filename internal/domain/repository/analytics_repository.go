package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics agregados de ventas para un rango de fechas.
type SalesMetrics struct {
	Revenue      decimal.Decimal
	InvoiceCount int64
}

// TopProduct producto con su ingreso acumulado en el rango consultado.
type TopProduct struct {
	ProductID int64
	Name      string
	Quantity  int64
	Revenue   decimal.Decimal
}

// CustomerStats agregados históricos de un cliente (solo presentación).
type CustomerStats struct {
	TotalOrders    int64
	TotalSpent     decimal.Decimal
	FirstOrderDate *time.Time
	LastOrderDate  *time.Time
}

// AnalyticsRepository consultas read-only para el dashboard y fichas de cliente.
type AnalyticsRepository interface {
	GetSalesMetrics(from, to time.Time) (*SalesMetrics, error)
	GetTopProducts(from, to time.Time, limit int) ([]TopProduct, error)
	CountLowStock() (int64, error)
	GetCustomerStats(customerID int64) (*CustomerStats, error)
}

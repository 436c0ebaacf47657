package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto destacado del dashboard.
type TopProductDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO resumen financiero del día y del mes en curso.
type DashboardSummaryDTO struct {
	TodaySales       decimal.Decimal `json:"today_sales"`
	TodayInvoices    int64           `json:"today_invoices"`
	MonthlySales     decimal.Decimal `json:"monthly_sales"`
	MonthlyInvoices  int64           `json:"monthly_invoices"`
	TopProducts      []TopProductDTO `json:"top_products"`
	LowStockProducts int64           `json:"low_stock_products"`
}

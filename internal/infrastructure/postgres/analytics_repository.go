package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard y fichas de cliente.
// Todas las agregaciones monetarias van en SQL; el caso de uso no recalcula nada.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics suma el ingreso y cuenta las facturas del rango [from, to].
func (r *AnalyticsRepo) GetSalesMetrics(from, to time.Time) (*repository.SalesMetrics, error) {
	var m repository.SalesMetrics
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		 FROM sales_invoices WHERE invoice_date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&m.Revenue, &m.InvoiceCount)
	if err != nil {
		return nil, fmt.Errorf("sales metrics: %w", err)
	}
	return &m, nil
}

// GetTopProducts devuelve los productos más vendidos del rango por ingreso.
func (r *AnalyticsRepo) GetTopProducts(from, to time.Time, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT d.product_id, p.name, SUM(d.quantity), SUM(d.subtotal - d.discount_amount)
		FROM sales_invoice_details d
		JOIN sales_invoices i ON i.id = d.invoice_id
		JOIN products p ON p.id = d.product_id
		WHERE i.invoice_date BETWEEN $1 AND $2
		GROUP BY d.product_id, p.name
		ORDER BY SUM(d.subtotal - d.discount_amount) DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// CountLowStock cuenta los productos en o por debajo de su umbral mínimo.
func (r *AnalyticsRepo) CountLowStock() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE current_quantity <= minimum_quantity`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// GetCustomerStats devuelve los agregados históricos de compras de un cliente.
func (r *AnalyticsRepo) GetCustomerStats(customerID int64) (*repository.CustomerStats, error) {
	var s repository.CustomerStats
	var total *decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*), SUM(total_amount), MIN(invoice_date), MAX(invoice_date)
		 FROM sales_invoices WHERE customer_id = $1`,
		customerID,
	).Scan(&s.TotalOrders, &total, &s.FirstOrderDate, &s.LastOrderDate)
	if err != nil {
		return nil, fmt.Errorf("customer stats: %w", err)
	}
	if total != nil {
		s.TotalSpent = *total
	} else {
		s.TotalSpent = decimal.Zero
	}
	return &s, nil
}

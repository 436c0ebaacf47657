// Package analytics contiene el caso de uso del dashboard de la tienda.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a la tabla de facturas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. GetSalesMetrics(hoy)
//  2. GetSalesMetrics(mes)
//  3. GetTopProducts(mes, top 5)
//  4. CountLowStock()
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type metricsResult struct {
		metrics *repository.SalesMetrics
		err     error
	}
	type topResult struct {
		products []repository.TopProduct
		err      error
	}
	type lowStockResult struct {
		count int64
		err   error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetSalesMetrics(todayStart, todayEnd)
		todayCh <- metricsResult{m, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetSalesMetrics(monthStart, monthEnd)
		monthCh <- metricsResult{m, err}
	}()
	go func() {
		p, err := uc.analyticsRepo.GetTopProducts(monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{p, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock()
		lowCh <- lowStockResult{n, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	low := <-lowCh

	if today.err != nil {
		return nil, fmt.Errorf("métricas del día: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("métricas del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("top productos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("conteo de stock bajo: %w", low.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:       today.metrics.Revenue,
		TodayInvoices:    today.metrics.InvoiceCount,
		MonthlySales:     month.metrics.Revenue,
		MonthlyInvoices:  month.metrics.InvoiceCount,
		TopProducts:      make([]dto.TopProductDTO, 0, len(top.products)),
		LowStockProducts: low.count,
	}
	for _, p := range top.products {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue,
		})
	}
	return summary, nil
}

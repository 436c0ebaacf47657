package pos

import (
	"context"
	"fmt"

	"github.com/jhoicas/ElectroPos-api/internal/application/dto"
	"github.com/jhoicas/ElectroPos-api/internal/domain"
)

// SalesCreator es el colaborador externo de checkout: la creación de la
// factura de venta (con revalidación de stock y descuento transaccional).
type SalesCreator interface {
	CreateInvoice(ctx context.Context, userID string, in dto.CreateSalesInvoiceRequest) (*dto.SalesInvoiceResponse, error)
}

// StockExceededError envuelve domain.ErrStockExceeded con el máximo
// disponible para que la caja muestre "máximo disponible: N".
type StockExceededError struct {
	ProductID    int64
	MaxAvailable int64
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("producto %d: %s (máximo disponible: %d)", e.ProductID, domain.ErrStockExceeded, e.MaxAvailable)
}

// Unwrap permite errors.Is(err, domain.ErrStockExceeded).
func (e *StockExceededError) Unwrap() error { return domain.ErrStockExceeded }

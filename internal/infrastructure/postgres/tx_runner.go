package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ElectroPos-api/internal/application/purchases"
	"github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/domain/repository"
)

var _ sales.SalesTxRunner = (*TxRunner)(nil)
var _ purchases.PurchaseTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales inicia una transacción con los repos de productos y facturas de
// venta atados a la tx, y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invoiceRepo repository.SalesInvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	invoiceRepo := NewSalesInvoiceRepository(tx)

	if err := fn(productRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchases inicia una transacción con los repos de productos y facturas
// de compra atados a la tx.
func (r *TxRunner) RunPurchases(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invoiceRepo repository.PurchaseInvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	invoiceRepo := NewPurchaseInvoiceRepository(tx)

	if err := fn(productRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

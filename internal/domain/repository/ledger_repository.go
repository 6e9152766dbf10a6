package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockTotals fila cruda del outer join productos ⟕ transacciones, una por producto.
// Lo produce el store; el stock se deriva en el dominio (inventory.Stock).
type StockTotals struct {
	ProductID    int64
	Name         string
	Description  string
	CategoryID   *int64
	CategoryName string // vacío si el producto no tiene categoría
	Price        decimal.Decimal
	ReorderLevel int
	In           int64 // Σ quantity de tipo IN
	Out          int64 // Σ quantity de tipo OUT
	Adjustment   int64 // Σ quantity de tipo ADJUSTMENT (no participa en el stock)
}

// LedgerRepository consultas de solo lectura sobre el ledger de transacciones.
type LedgerRepository interface {
	// ProductTotals devuelve los totales IN y OUT de un producto; ceros si no tiene transacciones.
	ProductTotals(ctx context.Context, productID int64) (in, out int64, err error)

	// StockTotals devuelve una fila por producto (incluidos los que no tienen transacciones),
	// ordenada por nombre de producto.
	StockTotals(ctx context.Context) ([]StockTotals, error)
}

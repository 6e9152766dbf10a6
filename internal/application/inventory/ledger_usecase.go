// Package inventory expone el motor del ledger: stock derivado, inventario actual,
// bajo stock, valorización e historial de transacciones.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	ledger "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// DefaultHistoryDays ventana del historial cuando el cliente no indica days.
const DefaultHistoryDays = 30

// Option configura el LedgerUseCase.
type Option func(*LedgerUseCase)

// WithClock reemplaza el reloj usado para calcular la ventana del historial.
func WithClock(now func() time.Time) Option {
	return func(uc *LedgerUseCase) { uc.now = now }
}

// LedgerUseCase lecturas derivadas del ledger. No guarda estado entre llamadas.
type LedgerUseCase struct {
	ledger       repository.LedgerRepository
	transactions repository.TransactionRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	ledgerRepo repository.LedgerRepository,
	transactions repository.TransactionRepository,
	log *logger.Logger,
	opts ...Option,
) *LedgerUseCase {
	uc := &LedgerUseCase{
		ledger:       ledgerRepo,
		transactions: transactions,
		log:          log.Named("ledger"),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *LedgerUseCase) fail(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("consulta del ledger falló")
	return domain.Classify(op, err)
}

// CurrentStock devuelve Σ IN − Σ OUT del producto; 0 si no tiene transacciones.
func (uc *LedgerUseCase) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	in, out, err := uc.ledger.ProductTotals(ctx, productID)
	if err != nil {
		return 0, uc.fail("ledger.current_stock", err)
	}
	return ledger.Stock(in, out), nil
}

// Items devuelve las filas de inventario del dominio, una por producto, ordenadas por nombre.
func (uc *LedgerUseCase) Items(ctx context.Context) ([]ledger.Item, error) {
	totals, err := uc.ledger.StockTotals(ctx)
	if err != nil {
		return nil, uc.fail("ledger.items", err)
	}
	return ledger.BuildItems(totals), nil
}

// CurrentInventory devuelve el inventario actual, incluidos los productos sin transacciones.
func (uc *LedgerUseCase) CurrentInventory(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryList(items), nil
}

// LowStockProducts devuelve los productos con stock <= nivel de reorden, del menor stock al mayor.
func (uc *LedgerUseCase) LowStockProducts(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewLowStockList(ledger.LowStock(items)), nil
}

// InventoryValue devuelve valor total, precio promedio y cantidad de productos.
func (uc *LedgerUseCase) InventoryValue(ctx context.Context) (dto.InventoryValueDTO, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return dto.InventoryValueDTO{}, err
	}
	return dto.NewInventoryValue(ledger.Value(items)), nil
}

// HistorySince devuelve now - days. Con days = 0 la ventana empieza en el instante actual.
func (uc *LedgerUseCase) HistorySince(days int) time.Time {
	return uc.now().AddDate(0, 0, -days)
}

// TransactionHistory devuelve las transacciones con fecha >= now - days, más recientes primero.
// days negativo es un error de validación.
func (uc *LedgerUseCase) TransactionHistory(ctx context.Context, days int) ([]dto.TransactionResponse, error) {
	const op = "ledger.history"
	if days < 0 {
		return nil, domain.NewValidationError(op, fmt.Errorf("%w: days debe ser >= 0, recibido %d", domain.ErrInvalidInput, days))
	}
	list, err := uc.transactions.ListSince(ctx, uc.HistorySince(days))
	if err != nil {
		return nil, uc.fail(op, err)
	}
	return dto.NewTransactionList(list), nil
}

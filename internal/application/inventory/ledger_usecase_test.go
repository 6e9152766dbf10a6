package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type ledgerFixture struct {
	store *memory.Store
	uc    *inventory.LedgerUseCase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	store := memory.NewStore(memory.WithClock(func() time.Time { return now }))
	uc := inventory.NewLedgerUseCase(store.Ledger(), store.Repositories().Transactions, logger.Nop(),
		inventory.WithClock(func() time.Time { return now }))
	return &ledgerFixture{store: store, uc: uc}
}

func (f *ledgerFixture) product(t *testing.T, p entity.Product) int64 {
	t.Helper()
	id, err := f.store.Repositories().Products.Create(context.Background(), &p)
	require.NoError(t, err)
	return id
}

func (f *ledgerFixture) tx(t *testing.T, productID int64, typ entity.TransactionType, qty int64, date time.Time) {
	t.Helper()
	_, err := f.store.Repositories().Transactions.Create(context.Background(), &entity.Transaction{
		ProductID: productID, Type: typ, Quantity: qty, Date: date,
	})
	require.NoError(t, err)
}

// laptopScenario: Electronics/Laptop con IN 10, OUT 2 y un ajuste que no cuenta.
func laptopScenario(t *testing.T) (*ledgerFixture, int64) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	catID, err := f.store.Repositories().Categories.Create(ctx, &entity.Category{Name: "Electronics"})
	require.NoError(t, err)
	laptop := f.product(t, entity.Product{Name: "Laptop", CategoryID: &catID, Price: decimal.RequireFromString("999.99"), ReorderLevel: 5})
	f.tx(t, laptop, entity.TransactionTypeIN, 10, now.Add(-72*time.Hour))
	f.tx(t, laptop, entity.TransactionTypeADJUSTMENT, 4, now.Add(-48*time.Hour))
	f.tx(t, laptop, entity.TransactionTypeOUT, 2, now.Add(-24*time.Hour))
	return f, laptop
}

func TestLedger_EscenarioLaptop(t *testing.T) {
	f, laptop := laptopScenario(t)
	ctx := context.Background()

	stock, err := f.uc.CurrentStock(ctx, laptop)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stock)

	inv, err := f.uc.CurrentInventory(ctx)
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, "Electronics", inv[0].CategoryName)
	assert.Equal(t, int64(8), inv[0].CurrentStock)
	assert.Equal(t, int64(4), inv[0].AdjustmentQty)
	assert.True(t, decimal.RequireFromString("7999.92").Equal(inv[0].Value))

	low, err := f.uc.LowStockProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, low, "8 > 5: no está bajo stock")

	value, err := f.uc.InventoryValue(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7999.92").Equal(value.TotalValue))
	assert.True(t, decimal.RequireFromString("999.99").Equal(value.AvgPrice))
	assert.Equal(t, 1, value.TotalProducts)
}

func TestLedger_ProductoSinTransacciones(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	id := f.product(t, entity.Product{Name: "Nuevo", Price: decimal.RequireFromString("3"), ReorderLevel: 10})

	stock, err := f.uc.CurrentStock(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, stock)

	inv, err := f.uc.CurrentInventory(ctx)
	require.NoError(t, err)
	require.Len(t, inv, 1, "el outer join incluye productos sin transacciones")
	assert.Empty(t, inv[0].CategoryName)

	low, err := f.uc.LowStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, int64(10), low[0].NeedToOrder)
}

func TestLedger_InventarioVacio(t *testing.T) {
	f := newLedgerFixture(t)
	value, err := f.uc.InventoryValue(context.Background())
	require.NoError(t, err)
	assert.True(t, value.TotalValue.IsZero())
	assert.True(t, value.AvgPrice.IsZero())
	assert.Zero(t, value.TotalProducts)
}

func TestLedger_TotalProductsCuentaTodos(t *testing.T) {
	f := newLedgerFixture(t)
	a := f.product(t, entity.Product{Name: "A", Price: decimal.RequireFromString("10"), ReorderLevel: 1})
	f.product(t, entity.Product{Name: "B", Price: decimal.RequireFromString("20"), ReorderLevel: 1})
	f.tx(t, a, entity.TransactionTypeOUT, 3, now)

	value, err := f.uc.InventoryValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, value.TotalProducts)
	assert.True(t, decimal.RequireFromString("-30").Equal(value.TotalValue), "los stocks negativos restan valor")
	assert.True(t, decimal.RequireFromString("15").Equal(value.AvgPrice))
}

func TestLedger_TransactionHistory(t *testing.T) {
	f, laptop := laptopScenario(t)
	ctx := context.Background()
	f.tx(t, laptop, entity.TransactionTypeIN, 100, now.AddDate(0, 0, -40))

	recent, err := f.uc.TransactionHistory(ctx, 30)
	require.NoError(t, err)
	require.Len(t, recent, 3, "la entrada de hace 40 días queda fuera")
	assert.Equal(t, "OUT", recent[0].Type, "más recientes primero")
	assert.Equal(t, "Laptop", recent[0].ProductName)

	all, err := f.uc.TransactionHistory(ctx, 60)
	require.NoError(t, err)
	assert.Len(t, all, 4)

}

func TestLedger_TransactionHistoryDiasCero(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	laptop := f.product(t, entity.Product{Name: "Laptop", Price: decimal.RequireFromString("999.99")})
	f.tx(t, laptop, entity.TransactionTypeIN, 10, now.AddDate(0, 0, -10))
	f.tx(t, laptop, entity.TransactionTypeOUT, 1, now)

	today, err := f.uc.TransactionHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, today, 1, "days = 0 solo incluye fechas >= now")
	assert.Equal(t, "OUT", today[0].Type)

	oneDay, err := f.uc.TransactionHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, oneDay, 1)

	eleven, err := f.uc.TransactionHistory(ctx, 11)
	require.NoError(t, err)
	assert.Len(t, eleven, 2)
	assert.True(t, now.Equal(f.uc.HistorySince(0)))
}

func TestLedger_TransactionHistoryDiasNegativos(t *testing.T) {
	f := newLedgerFixture(t)

	list, err := f.uc.TransactionHistory(context.Background(), -1)
	assert.Nil(t, list)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

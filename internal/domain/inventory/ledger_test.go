package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

func ptr(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Stock derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_SinTransaccionesEsCero(t *testing.T) {
	items := inventory.BuildItems([]repository.StockTotals{
		{ProductID: 1, Name: "Nuevo", Price: dec("5.00"), ReorderLevel: 10},
	})
	require.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].CurrentStock)
	assert.True(t, items[0].Value.IsZero())
}

func TestStock_AjustesNoParticipan(t *testing.T) {
	items := inventory.BuildItems([]repository.StockTotals{
		{ProductID: 1, Name: "Laptop", Price: dec("999.99"), ReorderLevel: 5, In: 10, Out: 2, Adjustment: 40},
	})
	require.Len(t, items, 1)
	assert.Equal(t, int64(8), items[0].CurrentStock, "ADJUSTMENT no debe sumar al stock")
	assert.Equal(t, int64(40), items[0].AdjustmentQty)
	assert.True(t, dec("7999.92").Equal(items[0].Value), "valor = 8 × 999.99")
}

func TestStock_PuedeSerNegativo(t *testing.T) {
	assert.Equal(t, int64(-3), inventory.Stock(2, 5))
}

// ──────────────────────────────────────────────────────────────────────────────
// Bajo stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_FiltraYOrdenaAscendente(t *testing.T) {
	items := inventory.BuildItems([]repository.StockTotals{
		{ProductID: 1, Name: "A", Price: dec("1"), ReorderLevel: 10, In: 100},      // 100 > 10 → excluido
		{ProductID: 2, Name: "B", Price: dec("1"), ReorderLevel: 5, In: 3},         // 3 <= 5
		{ProductID: 3, Name: "C", Price: dec("1"), ReorderLevel: 10, In: 10},       // igual al umbral
		{ProductID: 4, Name: "D", Price: dec("1"), ReorderLevel: 0, In: 1, Out: 4}, // negativo
	})

	low := inventory.LowStock(items)
	require.Len(t, low, 3)
	assert.Equal(t, int64(4), low[0].ProductID)
	assert.Equal(t, int64(2), low[1].ProductID)
	assert.Equal(t, int64(3), low[2].ProductID)

	assert.Equal(t, int64(3), low[0].NeedToOrder, "0 - (-3)")
	assert.Equal(t, int64(2), low[1].NeedToOrder)
	assert.Equal(t, int64(0), low[2].NeedToOrder)
}

func TestLowStock_VacioNoEsNil(t *testing.T) {
	low := inventory.LowStock(nil)
	assert.NotNil(t, low)
	assert.Empty(t, low)
}

// ──────────────────────────────────────────────────────────────────────────────
// Valorización
// ──────────────────────────────────────────────────────────────────────────────

func TestValue_IncluyeNegativosYPromedioSimple(t *testing.T) {
	items := inventory.BuildItems([]repository.StockTotals{
		{ProductID: 1, Name: "A", Price: dec("10.00"), In: 5},  // +50
		{ProductID: 2, Name: "B", Price: dec("20.00"), Out: 1}, // -20
		{ProductID: 3, Name: "C", Price: dec("30.00")},         // 0
	})

	v := inventory.Value(items)
	assert.Equal(t, 3, v.TotalProducts)
	assert.True(t, dec("30").Equal(v.TotalValue), "got %s", v.TotalValue)
	assert.True(t, dec("20").Equal(v.AvgPrice), "got %s", v.AvgPrice)
}

func TestValue_InventarioVacio(t *testing.T) {
	v := inventory.Value(nil)
	assert.Equal(t, 0, v.TotalProducts)
	assert.True(t, v.TotalValue.IsZero())
	assert.True(t, v.AvgPrice.IsZero())
}

func TestTopValued_ExcluyeStockNoPositivoYLimita(t *testing.T) {
	totals := []repository.StockTotals{
		{ProductID: 1, Name: "A", Price: dec("1"), In: 1},
		{ProductID: 2, Name: "B", Price: dec("100"), In: 1, Out: 1},
		{ProductID: 3, Name: "C", Price: dec("5"), In: 10},
		{ProductID: 4, Name: "D", Price: dec("2"), In: 10},
		{ProductID: 5, Name: "E", Price: dec("3"), In: 1},
		{ProductID: 6, Name: "F", Price: dec("4"), In: 1},
		{ProductID: 7, Name: "G", Price: dec("7"), In: 1},
		{ProductID: 8, Name: "H", Price: dec("9"), Out: 3},
	}
	top := inventory.TopValued(inventory.BuildItems(totals), 5)
	require.Len(t, top, 5)

	ids := make([]int64, 0, len(top))
	for _, it := range top {
		ids = append(ids, it.ProductID)
	}
	assert.Equal(t, []int64{3, 4, 7, 6, 5}, ids)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeByCategory(t *testing.T) {
	categories := []entity.Category{
		{ID: 1, Name: "Books"},
		{ID: 2, Name: "Electronics"},
		{ID: 3, Name: "Empty"},
	}
	items := inventory.BuildItems([]repository.StockTotals{
		{ProductID: 1, Name: "Laptop", CategoryID: ptr(2), Price: dec("999.99"), In: 10, Out: 2},
		{ProductID: 2, Name: "Mouse", CategoryID: ptr(2), Price: dec("20.01"), In: 1},
		{ProductID: 3, Name: "Novel", CategoryID: ptr(1), Price: dec("10"), In: 4},
		{ProductID: 4, Name: "Loose", Price: dec("1"), In: 100},
	})

	summary := inventory.SummarizeByCategory(categories, items)
	require.Len(t, summary, 3)

	assert.Equal(t, "Electronics", summary[0].Name)
	assert.Equal(t, 2, summary[0].ProductCount)
	assert.Equal(t, int64(9), summary[0].TotalStock)
	assert.True(t, dec("8019.93").Equal(summary[0].TotalValue), "got %s", summary[0].TotalValue)
	assert.True(t, dec("510").Equal(summary[0].AvgPrice), "got %s", summary[0].AvgPrice)

	assert.Equal(t, "Books", summary[1].Name)
	assert.True(t, dec("40").Equal(summary[1].TotalValue))

	assert.Equal(t, "Empty", summary[2].Name)
	assert.Equal(t, 0, summary[2].ProductCount)
	assert.Equal(t, int64(0), summary[2].TotalStock)
	assert.True(t, summary[2].AvgPrice.IsZero())
	assert.True(t, summary[2].TotalValue.IsZero())
}

// Package inventory contiene la aritmética del ledger: stock derivado, bajo stock y valorización.
// Funciones puras sobre los totales que entrega el store; no hay caché ni estado.
package inventory

import (
	"sort"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Stock deriva el stock actual: Σ IN − Σ OUT. Los ajustes no participan.
func Stock(in, out int64) int64 {
	return in - out
}

// Item fila del inventario actual.
type Item struct {
	ProductID     int64
	Name          string
	Description   string
	CategoryID    *int64
	CategoryName  string
	Price         decimal.Decimal
	ReorderLevel  int
	CurrentStock  int64
	AdjustmentQty int64           // ajustes registrados, informativo
	Value         decimal.Decimal // CurrentStock × Price (puede ser negativo)
}

// IsLow indica si el stock está en o por debajo del nivel de reorden.
func (i Item) IsLow() bool {
	return i.CurrentStock <= int64(i.ReorderLevel)
}

// LowStockItem producto bajo el nivel de reorden.
type LowStockItem struct {
	Item
	NeedToOrder int64 // ReorderLevel − CurrentStock
}

// Valuation resumen de valorización del inventario.
type Valuation struct {
	TotalValue    decimal.Decimal
	AvgPrice      decimal.Decimal // promedio simple de precios, no ponderado por stock
	TotalProducts int
}

// BuildItems convierte los totales del store en filas de inventario, conservando el orden recibido.
func BuildItems(totals []repository.StockTotals) []Item {
	items := make([]Item, 0, len(totals))
	for _, t := range totals {
		stock := Stock(t.In, t.Out)
		items = append(items, Item{
			ProductID:     t.ProductID,
			Name:          t.Name,
			Description:   t.Description,
			CategoryID:    t.CategoryID,
			CategoryName:  t.CategoryName,
			Price:         t.Price,
			ReorderLevel:  t.ReorderLevel,
			CurrentStock:  stock,
			AdjustmentQty: t.Adjustment,
			Value:         t.Price.Mul(decimal.NewFromInt(stock)),
		})
	}
	return items
}

// LowStock filtra los productos con stock <= nivel de reorden, del más urgente al menos urgente.
// El orden relativo de la entrada se mantiene entre empates.
func LowStock(items []Item) []LowStockItem {
	out := make([]LowStockItem, 0)
	for _, it := range items {
		if !it.IsLow() {
			continue
		}
		out = append(out, LowStockItem{
			Item:        it,
			NeedToOrder: int64(it.ReorderLevel) - it.CurrentStock,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CurrentStock < out[j].CurrentStock
	})
	return out
}

// Value calcula el valor total, el precio promedio y el conteo de productos.
// Con inventario vacío devuelve ceros.
func Value(items []Item) Valuation {
	v := Valuation{
		TotalValue:    decimal.Zero,
		AvgPrice:      decimal.Zero,
		TotalProducts: len(items),
	}
	if len(items) == 0 {
		return v
	}
	priceSum := decimal.Zero
	for _, it := range items {
		v.TotalValue = v.TotalValue.Add(it.Value)
		priceSum = priceSum.Add(it.Price)
	}
	v.AvgPrice = priceSum.Div(decimal.NewFromInt(int64(len(items))))
	return v
}

// TopValued devuelve hasta n productos con mayor valor, excluyendo stock <= 0.
func TopValued(items []Item, n int) []Item {
	out := make([]Item, 0, n)
	for _, it := range items {
		if it.CurrentStock > 0 {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

package inventory

import (
	"sort"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CategorySummary agregado del inventario por categoría.
type CategorySummary struct {
	CategoryID   int64
	Name         string
	ProductCount int
	TotalStock   int64
	AvgPrice     decimal.Decimal
	TotalValue   decimal.Decimal
}

// SummarizeByCategory agrega items por categoría. Las categorías sin productos aparecen en cero.
// Los productos sin categoría no se reportan. Orden: valor total descendente; empates en el orden de categories.
func SummarizeByCategory(categories []entity.Category, items []Item) []CategorySummary {
	byCategory := make(map[int64][]Item, len(categories))
	for _, it := range items {
		if it.CategoryID == nil {
			continue
		}
		byCategory[*it.CategoryID] = append(byCategory[*it.CategoryID], it)
	}

	out := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		s := CategorySummary{
			CategoryID: c.ID,
			Name:       c.Name,
			AvgPrice:   decimal.Zero,
			TotalValue: decimal.Zero,
		}
		members := byCategory[c.ID]
		if len(members) > 0 {
			priceSum := decimal.Zero
			for _, it := range members {
				s.TotalStock += it.CurrentStock
				s.TotalValue = s.TotalValue.Add(it.Value)
				priceSum = priceSum.Add(it.Price)
			}
			s.ProductCount = len(members)
			s.AvgPrice = priceSum.Div(decimal.NewFromInt(int64(len(members))))
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalValue.GreaterThan(out[j].TotalValue)
	})
	return out
}

package dto

import (
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryItemDTO fila del inventario actual.
type InventoryItemDTO struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *int64          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	Price         decimal.Decimal `json:"price"`
	ReorderLevel  int             `json:"reorder_level"`
	CurrentStock  int64           `json:"current_stock"`
	AdjustmentQty int64           `json:"adjustment_qty"` // ajustes registrados; no suman al stock
	Value         decimal.Decimal `json:"value"`
}

// LowStockItemDTO producto en o bajo el nivel de reorden.
type LowStockItemDTO struct {
	InventoryItemDTO
	NeedToOrder int64 `json:"need_to_order"`
}

// InventoryValueDTO valorización del inventario.
type InventoryValueDTO struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
	TotalProducts int             `json:"total_products"`
}

// NewInventoryItem mapea una fila del dominio.
func NewInventoryItem(it inventory.Item) InventoryItemDTO {
	return InventoryItemDTO{
		ProductID:     it.ProductID,
		Name:          it.Name,
		Description:   it.Description,
		CategoryID:    it.CategoryID,
		CategoryName:  it.CategoryName,
		Price:         it.Price,
		ReorderLevel:  it.ReorderLevel,
		CurrentStock:  it.CurrentStock,
		AdjustmentQty: it.AdjustmentQty,
		Value:         it.Value,
	}
}

// NewInventoryList mapea filas del dominio; nunca devuelve nil.
func NewInventoryList(items []inventory.Item) []InventoryItemDTO {
	out := make([]InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, NewInventoryItem(it))
	}
	return out
}

// NewLowStockList mapea las filas de bajo stock.
func NewLowStockList(items []inventory.LowStockItem) []LowStockItemDTO {
	out := make([]LowStockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, LowStockItemDTO{InventoryItemDTO: NewInventoryItem(it.Item), NeedToOrder: it.NeedToOrder})
	}
	return out
}

// NewInventoryValue mapea la valorización.
func NewInventoryValue(v inventory.Valuation) InventoryValueDTO {
	return InventoryValueDTO{TotalValue: v.TotalValue, AvgPrice: v.AvgPrice, TotalProducts: v.TotalProducts}
}

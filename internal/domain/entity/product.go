package entity

import "github.com/shopspring/decimal"

// DefaultReorderLevel umbral de reorden cuando no se indica otro.
const DefaultReorderLevel = 10

// Product representa un producto del inventario.
// El stock no se almacena: se deriva del ledger de transacciones.
type Product struct {
	ID           int64
	Name         string
	Description  string
	CategoryID   *int64          // nil si el producto no tiene categoría
	Price        decimal.Decimal // precio actual, no versionado
	ReorderLevel int

	// CategoryName se llena solo en lecturas con JOIN; vacío si no tiene categoría.
	CategoryName string
}

package dto

import (
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto (reemplazo completo).
// ReorderLevel nil toma el valor por defecto (10).
type ProductRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Description  string          `json:"description" validate:"max=2000"`
	CategoryID   *int64          `json:"category_id" validate:"omitempty,gt=0"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	ReorderLevel *int            `json:"reorder_level" validate:"omitempty,gte=0,max=2147483647"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorder_level"`
}

// StockResponse stock derivado de un producto.
type StockResponse struct {
	ProductID    int64 `json:"product_id"`
	CurrentStock int64 `json:"current_stock"`
}

// NewProductResponse mapea la entidad.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		ReorderLevel: p.ReorderLevel,
	}
}

package dto

import "github.com/jhoicas/inventario-ledger/internal/domain/entity"

// CategoryRequest entrada para crear o reemplazar una categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCategoryResponse mapea la entidad.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

package dto

import "github.com/jhoicas/inventario-ledger/internal/domain/entity"

// SupplierRequest entrada para crear o reemplazar un proveedor.
type SupplierRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	ContactInfo string `json:"contact_info" validate:"max=500"`
	Address     string `json:"address" validate:"max=500"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Address     string `json:"address"`
}

// NewSupplierResponse mapea la entidad.
func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, ContactInfo: s.ContactInfo, Address: s.Address}
}

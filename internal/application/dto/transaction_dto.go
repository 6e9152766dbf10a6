package dto

import (
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// TransactionRequest entrada para registrar o reemplazar una transacción.
// Date solo se usa al crear; vacío = hora actual.
type TransactionRequest struct {
	ProductID  int64      `json:"product_id" validate:"required,gt=0"`
	Type       string     `json:"transaction_type" validate:"txtype"`
	Quantity   int64      `json:"quantity"`
	SupplierID *int64     `json:"supplier_id" validate:"omitempty,gt=0"`
	Notes      string     `json:"notes" validate:"max=2000"`
	Date       *time.Time `json:"date"`
}

// TransactionResponse salida de una transacción con nombres de producto y proveedor.
type TransactionResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Type         string    `json:"transaction_type"`
	Quantity     int64     `json:"quantity"`
	Date         time.Time `json:"date"`
	SupplierID   *int64    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	Notes        string    `json:"notes"`
}

// NewTransactionResponse mapea la entidad.
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		ProductID:    t.ProductID,
		ProductName:  t.ProductName,
		Type:         string(t.Type),
		Quantity:     t.Quantity,
		Date:         t.Date,
		SupplierID:   t.SupplierID,
		SupplierName: t.SupplierName,
		Notes:        t.Notes,
	}
}

// NewTransactionList mapea una lista de entidades; nunca devuelve nil.
func NewTransactionList(list []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

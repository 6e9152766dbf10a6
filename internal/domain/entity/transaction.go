package entity

import "time"

// TransactionType tipo de movimiento del ledger.
type TransactionType string

// Tipos de transacción de inventario.
const (
	TransactionTypeIN         TransactionType = "IN"         // entrada
	TransactionTypeOUT        TransactionType = "OUT"        // salida
	TransactionTypeADJUSTMENT TransactionType = "ADJUSTMENT" // ajuste (no afecta el stock derivado)
)

// Valid indica si t pertenece al dominio IN | OUT | ADJUSTMENT.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIN, TransactionTypeOUT, TransactionTypeADJUSTMENT:
		return true
	}
	return false
}

// Transaction es una entrada del ledger de inventario.
type Transaction struct {
	ID         int64
	ProductID  int64
	Type       TransactionType
	Quantity   int64
	Date       time.Time
	SupplierID *int64 // nil si no aplica proveedor
	Notes      string

	// Campos de lectura (JOIN con products y suppliers).
	ProductName  string
	SupplierName string
}

package repository

import "context"

// Repositories agrupa los repositorios de escritura atados a una misma transacción de BD.
type Repositories struct {
	Categories   CategoryRepository
	Suppliers    SupplierRepository
	Products     ProductRepository
	Transactions TransactionRepository
}

// TxRunner ejecuta fn dentro de una transacción del store; Commit si fn no falla, Rollback si falla.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

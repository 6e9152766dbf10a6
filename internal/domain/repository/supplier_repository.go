package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// CountTransactions cuenta las transacciones que referencian al proveedor.
	CountTransactions(ctx context.Context, id int64) (int64, error)
}

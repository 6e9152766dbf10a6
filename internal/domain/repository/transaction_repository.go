package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para el ledger de transacciones.
// Las lecturas incluyen nombre de producto y de proveedor.
type TransactionRepository interface {
	// Create inserta la transacción; si Date es cero el store asigna la hora actual.
	Create(ctx context.Context, tx *entity.Transaction) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	// List devuelve las transacciones más recientes primero, hasta limit filas.
	List(ctx context.Context, limit int) ([]*entity.Transaction, error)
	// ListSince devuelve las transacciones con fecha >= since, más recientes primero.
	ListSince(ctx context.Context, since time.Time) ([]*entity.Transaction, error)
	// Update reemplaza producto, tipo, cantidad, proveedor y notas. La fecha no cambia.
	Update(ctx context.Context, tx *entity.Transaction) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas incluyen el nombre de la categoría (LEFT JOIN).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// Search busca term (sin distinguir mayúsculas) en nombre o descripción, ordenado por nombre.
	Search(ctx context.Context, term string) ([]*entity.Product, error)
	// CountTransactions cuenta las transacciones del producto.
	CountTransactions(ctx context.Context, id int64) (int64, error)
}

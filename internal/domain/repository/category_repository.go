package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve nil, nil si no existe. Update y Delete devuelven false si ninguna fila coincide.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// CountProducts cuenta los productos que referencian la categoría.
	CountProducts(ctx context.Context, id int64) (int64, error)
}

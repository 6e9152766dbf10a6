package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría y devuelve el id asignado. Nombre repetido → domain.ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name, textOrNull(c.Description),
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert category", err)
	}
	return id, nil
}

// GetByID obtiene una categoría por ID; nil, nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var (
		c    entity.Category
		desc pgtype.Text
	)
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &desc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	c.Description = desc.String
	return &c, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, description FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Category, 0)
	for rows.Next() {
		var (
			c    entity.Category
			desc pgtype.Text
		)
		if err := rows.Scan(&c.ID, &c.Name, &desc); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Description = desc.String
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update reemplaza nombre y descripción. false si no existe la fila.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		c.ID, c.Name, textOrNull(c.Description),
	)
	if err != nil {
		return false, mapWriteError("update category", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina la categoría. Con productos asociados el store la rechaza (ON DELETE RESTRICT).
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, mapDeleteError("delete category", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CountProducts cuenta los productos de la categoría.
func (r *CategoryRepo) CountProducts(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, id,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count category products: %w", err)
	}
	return n, nil
}

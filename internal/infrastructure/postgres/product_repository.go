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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.category_id, p.price, p.reorder_level, c.name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p            entity.Product
		desc, catNam pgtype.Text
		catID        pgtype.Int8
	)
	if err := row.Scan(&p.ID, &p.Name, &desc, &catID, &p.Price, &p.ReorderLevel, &catNam); err != nil {
		return nil, err
	}
	p.Description = desc.String
	p.CategoryID = int8Ptr(catID)
	p.CategoryName = catNam.String
	return &p, nil
}

func (r *ProductRepo) scanList(rows pgx.Rows, op string) ([]*entity.Product, error) {
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", op, err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto. Categoría inexistente → domain.ErrReferenceNotFound.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (name, description, category_id, price, reorder_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Name, textOrNull(p.Description), int8OrNull(p.CategoryID), p.Price, p.ReorderLevel,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert product", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID con el nombre de su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.name, p.id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanList(rows, "product")
}

// Search busca term como subcadena en nombre o descripción (ILIKE, comodines escapados).
func (r *ProductRepo) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	pattern := "%" + escapeLike(term) + "%"
	rows, err := r.q.Query(ctx, productSelect+`
		WHERE p.name ILIKE $1 ESCAPE '\' OR p.description ILIKE $1 ESCAPE '\'
		ORDER BY p.name, p.id`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return r.scanList(rows, "product search")
}

// Update reemplaza todos los campos mutables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, price = $5, reorder_level = $6
		WHERE id = $1`,
		p.ID, p.Name, textOrNull(p.Description), int8OrNull(p.CategoryID), p.Price, p.ReorderLevel,
	)
	if err != nil {
		return false, mapWriteError("update product", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por ID. Con transacciones asociadas el store lo rechaza.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, mapDeleteError("delete product", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CountTransactions cuenta las transacciones del producto.
func (r *ProductRepo) CountTransactions(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_transactions WHERE product_id = $1`, id,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count product transactions: %w", err)
	}
	return n, nil
}

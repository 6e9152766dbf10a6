package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo consultas de solo lectura sobre inventory_transactions.
// El stock nunca se almacena: se agregan las cantidades por tipo y el dominio lo deriva.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// ProductTotals devuelve Σ IN y Σ OUT de un producto (COALESCE → cero sin transacciones).
func (r *LedgerRepo) ProductTotals(ctx context.Context, productID int64) (in, out int64, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'IN'),  0)::bigint AS qty_in,
	    COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'OUT'), 0)::bigint AS qty_out
	FROM inventory_transactions
	WHERE product_id = $1`

	if err = r.q.QueryRow(ctx, query, productID).Scan(&in, &out); err != nil {
		return 0, 0, fmt.Errorf("ledger.ProductTotals: %w", err)
	}
	return in, out, nil
}

// StockTotals devuelve una fila por producto; los productos sin transacciones entran por el LEFT JOIN con ceros.
func (r *LedgerRepo) StockTotals(ctx context.Context) ([]repository.StockTotals, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.description,
	    p.category_id,
	    c.name                                                                          AS category_name,
	    p.price,
	    p.reorder_level,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'IN'),         0)::bigint AS qty_in,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'OUT'),        0)::bigint AS qty_out,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'ADJUSTMENT'), 0)::bigint AS qty_adjustment
	FROM products p
	LEFT JOIN categories c             ON c.id         = p.category_id
	LEFT JOIN inventory_transactions t ON t.product_id = p.id
	GROUP BY p.id, c.name
	ORDER BY p.name, p.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ledger.StockTotals: %w", err)
	}
	defer rows.Close()

	results := make([]repository.StockTotals, 0)
	for rows.Next() {
		var (
			row           repository.StockTotals
			desc, catName pgtype.Text
			catID         pgtype.Int8
		)
		if err := rows.Scan(
			&row.ProductID,
			&row.Name,
			&desc,
			&catID,
			&catName,
			&row.Price,
			&row.ReorderLevel,
			&row.In,
			&row.Out,
			&row.Adjustment,
		); err != nil {
			return nil, fmt.Errorf("ledger.StockTotals scan: %w", err)
		}
		row.Description = desc.String
		row.CategoryID = int8Ptr(catID)
		row.CategoryName = catName.String
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger.StockTotals rows: %w", err)
	}
	return results, nil
}

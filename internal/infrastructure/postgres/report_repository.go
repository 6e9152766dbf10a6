package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de proveedores y resumen mensual.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SupplierActivity agrupa transacciones por proveedor. Los proveedores sin movimientos aparecen con ceros.
func (r *ReportRepo) SupplierActivity(ctx context.Context) ([]repository.SupplierActivity, error) {
	const query = `
	SELECT
	    s.id,
	    s.name,
	    COUNT(t.id)                                                              AS transaction_count,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'IN'),  0)::bigint AS total_received,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'OUT'), 0)::bigint AS total_shipped,
	    COUNT(DISTINCT t.product_id)                                             AS products_handled
	FROM suppliers s
	LEFT JOIN inventory_transactions t ON t.supplier_id = s.id
	GROUP BY s.id, s.name
	ORDER BY s.name, s.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.SupplierActivity: %w", err)
	}
	defer rows.Close()

	results := make([]repository.SupplierActivity, 0)
	for rows.Next() {
		var row repository.SupplierActivity
		if err := rows.Scan(
			&row.SupplierID,
			&row.Name,
			&row.TransactionCount,
			&row.TotalReceived,
			&row.TotalShipped,
			&row.ProductsHandled,
		); err != nil {
			return nil, fmt.Errorf("report.SupplierActivity scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PeriodActivity totales de las transacciones con fecha >= since.
func (r *ReportRepo) PeriodActivity(ctx context.Context, since time.Time) (repository.PeriodActivity, error) {
	const query = `
	SELECT
	    COUNT(*)                                                             AS total_transactions,
	    COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'IN'),  0)::bigint AS total_in,
	    COALESCE(SUM(quantity) FILTER (WHERE transaction_type = 'OUT'), 0)::bigint AS total_out,
	    COUNT(DISTINCT product_id)                                           AS products_affected
	FROM inventory_transactions
	WHERE date >= $1`

	var a repository.PeriodActivity
	err := r.q.QueryRow(ctx, query, since).
		Scan(&a.TotalTransactions, &a.TotalIn, &a.TotalOut, &a.ProductsAffected)
	if err != nil {
		return repository.PeriodActivity{}, fmt.Errorf("report.PeriodActivity: %w", err)
	}
	return a, nil
}

// TopProductsByActivity devuelve los productos con más transacciones desde since.
func (r *ReportRepo) TopProductsByActivity(ctx context.Context, since time.Time, limit int) ([]repository.ProductActivity, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    COUNT(t.id)                                                              AS transaction_count,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'IN'),  0)::bigint AS received,
	    COALESCE(SUM(t.quantity) FILTER (WHERE t.transaction_type = 'OUT'), 0)::bigint AS shipped
	FROM inventory_transactions t
	JOIN products p ON p.id = t.product_id
	WHERE t.date >= $1
	GROUP BY p.id, p.name
	ORDER BY transaction_count DESC, p.name
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopProductsByActivity: %w", err)
	}
	defer rows.Close()

	results := make([]repository.ProductActivity, 0)
	for rows.Next() {
		var row repository.ProductActivity
		if err := rows.Scan(&row.ProductID, &row.Name, &row.TransactionCount, &row.Received, &row.Shipped); err != nil {
			return nil, fmt.Errorf("report.TopProductsByActivity scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.TopProductsByActivity rows: %w", err)
	}
	return results, nil
}

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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, contact_info, address`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var (
		s                entity.Supplier
		contact, address pgtype.Text
	)
	if err := row.Scan(&s.ID, &s.Name, &contact, &address); err != nil {
		return nil, err
	}
	s.ContactInfo = contact.String
	s.Address = address.String
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO suppliers (name, contact_info, address) VALUES ($1, $2, $3) RETURNING id`,
		s.Name, textOrNull(s.ContactInfo), textOrNull(s.Address),
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert supplier", err)
	}
	return id, nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE suppliers SET name = $2, contact_info = $3, address = $4 WHERE id = $1`,
		s.ID, s.Name, textOrNull(s.ContactInfo), textOrNull(s.Address),
	)
	if err != nil {
		return false, mapWriteError("update supplier", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, mapDeleteError("delete supplier", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *SupplierRepo) CountTransactions(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_transactions WHERE supplier_id = $1`, id,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count supplier transactions: %w", err)
	}
	return n, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador del ledger de transacciones sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionSelect = `
	SELECT t.id, t.product_id, t.transaction_type, t.quantity, t.date, t.supplier_id, t.notes,
	       p.name, s.name
	FROM inventory_transactions t
	JOIN products p       ON p.id = t.product_id
	LEFT JOIN suppliers s ON s.id = t.supplier_id`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		t            entity.Transaction
		txType       string
		supplierID   pgtype.Int8
		notes, sName pgtype.Text
	)
	if err := row.Scan(&t.ID, &t.ProductID, &txType, &t.Quantity, &t.Date, &supplierID, &notes,
		&t.ProductName, &sName); err != nil {
		return nil, err
	}
	t.Type = entity.TransactionType(txType)
	t.SupplierID = int8Ptr(supplierID)
	t.Notes = notes.String
	t.SupplierName = sName.String
	return &t, nil
}

func scanTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	defer rows.Close()
	list := make([]*entity.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Create registra una transacción. Sin fecha explícita se usa now() del servidor.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) (int64, error) {
	date := pgtype.Timestamptz{Time: t.Date, Valid: !t.Date.IsZero()}
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_transactions (product_id, transaction_type, quantity, date, supplier_id, notes)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, now()), $5, $6)
		RETURNING id`,
		t.ProductID, string(t.Type), t.Quantity, date, int8OrNull(t.SupplierID), textOrNull(t.Notes),
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert transaction", err)
	}
	return id, nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, transactionSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List devuelve las `limit` transacciones más recientes.
func (r *TransactionRepo) List(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, transactionSelect+` ORDER BY t.date DESC, t.id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return scanTransactions(rows)
}

// ListSince devuelve las transacciones con fecha >= since, más recientes primero.
func (r *TransactionRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, transactionSelect+` WHERE t.date >= $1 ORDER BY t.date DESC, t.id DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("list transactions since: %w", err)
	}
	return scanTransactions(rows)
}

// Update reemplaza los campos mutables; la fecha original se conserva.
func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory_transactions
		SET product_id = $2, transaction_type = $3, quantity = $4, supplier_id = $5, notes = $6
		WHERE id = $1`,
		t.ID, t.ProductID, string(t.Type), t.Quantity, int8OrNull(t.SupplierID), textOrNull(t.Notes),
	)
	if err != nil {
		return false, mapWriteError("update transaction", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina la transacción. No hay dependientes; el stock derivado cambia en consecuencia.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_transactions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

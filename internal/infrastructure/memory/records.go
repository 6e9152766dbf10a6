package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var (
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.SupplierRepository    = (*SupplierRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
)

// ── Categories ────────────────────────────────────────────────────────────────

// CategoryRepo categorías en memoria; el nombre es único.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) nameTaken(name string, exceptID int64) bool {
	for id, c := range r.s.categories {
		if id != exceptID && c.Name == name {
			return true
		}
	}
	return false
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return 0, fmt.Errorf("insert category: %w", domain.ErrDuplicate)
	}
	r.s.lastCategoryID++
	row := *c
	row.ID = r.s.lastCategoryID
	r.s.categories[row.ID] = row
	return row.ID, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := sortedValues(r.s.categories, func(a, b entity.Category) bool {
		return byNameThenID(a.Name, a.ID, b.Name, b.ID)
	})
	out := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return false, nil
	}
	if r.nameTaken(c.Name, c.ID) {
		return false, fmt.Errorf("update category: %w", domain.ErrDuplicate)
	}
	r.s.categories[c.ID] = *c
	return true, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return false, nil
	}
	delete(r.s.categories, id)
	return true, nil
}

func (r *CategoryRepo) CountProducts(_ context.Context, id int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, p := range r.s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			n++
		}
	}
	return n, nil
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// SupplierRepo proveedores en memoria.
type SupplierRepo struct{ s *Store }

func (r *SupplierRepo) Create(_ context.Context, sup *entity.Supplier) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastSupplierID++
	row := *sup
	row.ID = r.s.lastSupplierID
	r.s.suppliers[row.ID] = row
	return row.ID, nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := sortedValues(r.s.suppliers, func(a, b entity.Supplier) bool {
		return byNameThenID(a.Name, a.ID, b.Name, b.ID)
	})
	out := make([]*entity.Supplier, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *SupplierRepo) Update(_ context.Context, sup *entity.Supplier) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sup.ID]; !ok {
		return false, nil
	}
	r.s.suppliers[sup.ID] = *sup
	return true, nil
}

func (r *SupplierRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return false, nil
	}
	delete(r.s.suppliers, id)
	return true, nil
}

func (r *SupplierRepo) CountTransactions(_ context.Context, id int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, t := range r.s.transactions {
		if t.SupplierID != nil && *t.SupplierID == id {
			n++
		}
	}
	return n, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ProductRepo productos en memoria. Las lecturas resuelven el nombre de la categoría.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) withCategory(p entity.Product) *entity.Product {
	p.CategoryName = ""
	if p.CategoryID != nil {
		if c, ok := r.s.categories[*p.CategoryID]; ok {
			p.CategoryName = c.Name
		}
	}
	return &p
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	if p.Price.IsNegative() {
		return 0, checkViolation("insert product", "price >= 0")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastProductID++
	row := *p
	row.ID = r.s.lastProductID
	row.CategoryName = ""
	r.s.products[row.ID] = row
	return row.ID, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(p), nil
}

func (r *ProductRepo) sorted(filter func(entity.Product) bool) []*entity.Product {
	rows := sortedValues(r.s.products, func(a, b entity.Product) bool {
		return byNameThenID(a.Name, a.ID, b.Name, b.ID)
	})
	out := make([]*entity.Product, 0, len(rows))
	for _, p := range rows {
		if filter == nil || filter(p) {
			out = append(out, r.withCategory(p))
		}
	}
	return out
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sorted(nil), nil
}

// Search compara con case folding Unicode (x/text/cases), equivalente a ILIKE '%term%'.
func (r *ProductRepo) Search(_ context.Context, term string) ([]*entity.Product, error) {
	fold := cases.Fold()
	needle := fold.String(term)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sorted(func(p entity.Product) bool {
		return strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle)
	}), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) (bool, error) {
	if p.Price.IsNegative() {
		return false, checkViolation("update product", "price >= 0")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return false, nil
	}
	row := *p
	row.CategoryName = ""
	r.s.products[p.ID] = row
	return true, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

func (r *ProductRepo) CountTransactions(_ context.Context, id int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, t := range r.s.transactions {
		if t.ProductID == id {
			n++
		}
	}
	return n, nil
}

// ── Transactions ──────────────────────────────────────────────────────────────

// TransactionRepo ledger en memoria.
type TransactionRepo struct{ s *Store }

// joined resuelve nombres de producto y proveedor; false si el producto no existe (equivale al JOIN).
func (r *TransactionRepo) joined(t entity.Transaction) (*entity.Transaction, bool) {
	p, ok := r.s.products[t.ProductID]
	if !ok {
		return nil, false
	}
	t.ProductName = p.Name
	t.SupplierName = ""
	if t.SupplierID != nil {
		if sup, ok := r.s.suppliers[*t.SupplierID]; ok {
			t.SupplierName = sup.Name
		}
	}
	return &t, true
}

func (r *TransactionRepo) Create(_ context.Context, t *entity.Transaction) (int64, error) {
	if !t.Type.Valid() {
		return 0, checkViolation("insert transaction", "transaction_type")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastTransactionID++
	row := *t
	row.ID = r.s.lastTransactionID
	if row.Date.IsZero() {
		row.Date = r.s.now()
	}
	row.ProductName, row.SupplierName = "", ""
	r.s.transactions[row.ID] = row
	return row.ID, nil
}

func (r *TransactionRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	out, ok := r.joined(t)
	if !ok {
		return nil, nil
	}
	return out, nil
}

// newestFirst lista el ledger por fecha descendente (id descendente en empates).
func (r *TransactionRepo) newestFirst(keep func(entity.Transaction) bool, limit int) []*entity.Transaction {
	rows := sortedValues(r.s.transactions, func(a, b entity.Transaction) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
	out := make([]*entity.Transaction, 0)
	for _, t := range rows {
		if limit > 0 && len(out) == limit {
			break
		}
		if keep != nil && !keep(t) {
			continue
		}
		if j, ok := r.joined(t); ok {
			out = append(out, j)
		}
	}
	return out
}

func (r *TransactionRepo) List(_ context.Context, limit int) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.newestFirst(nil, limit), nil
}

func (r *TransactionRepo) ListSince(_ context.Context, since time.Time) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.newestFirst(func(t entity.Transaction) bool { return !t.Date.Before(since) }, 0), nil
}

func (r *TransactionRepo) Update(_ context.Context, t *entity.Transaction) (bool, error) {
	if !t.Type.Valid() {
		return false, checkViolation("update transaction", "transaction_type")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.transactions[t.ID]
	if !ok {
		return false, nil
	}
	cur.ProductID = t.ProductID
	cur.Type = t.Type
	cur.Quantity = t.Quantity
	cur.SupplierID = t.SupplierID
	cur.Notes = t.Notes
	r.s.transactions[t.ID] = cur
	return true, nil
}

func (r *TransactionRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.transactions[id]; !ok {
		return false, nil
	}
	delete(r.s.transactions, id)
	return true, nil
}

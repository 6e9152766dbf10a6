package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var (
	_ repository.LedgerRepository = (*LedgerRepo)(nil)
	_ repository.ReportRepository = (*ReportRepo)(nil)
)

// totals acumula cantidades por tipo de transacción.
type totals struct {
	in, out, adjustment int64
}

func (t *totals) add(tx entity.Transaction) {
	switch tx.Type {
	case entity.TransactionTypeIN:
		t.in += tx.Quantity
	case entity.TransactionTypeOUT:
		t.out += tx.Quantity
	case entity.TransactionTypeADJUSTMENT:
		t.adjustment += tx.Quantity
	}
}

// LedgerRepo agregados del ledger en memoria.
type LedgerRepo struct{ s *Store }

func (r *LedgerRepo) ProductTotals(_ context.Context, productID int64) (in, out int64, err error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var t totals
	for _, tx := range r.s.transactions {
		if tx.ProductID == productID {
			t.add(tx)
		}
	}
	return t.in, t.out, nil
}

func (r *LedgerRepo) StockTotals(_ context.Context) ([]repository.StockTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byProduct := make(map[int64]*totals, len(r.s.products))
	for _, tx := range r.s.transactions {
		t, ok := byProduct[tx.ProductID]
		if !ok {
			t = &totals{}
			byProduct[tx.ProductID] = t
		}
		t.add(tx)
	}

	products := sortedValues(r.s.products, func(a, b entity.Product) bool {
		return byNameThenID(a.Name, a.ID, b.Name, b.ID)
	})
	out := make([]repository.StockTotals, 0, len(products))
	for _, p := range products {
		row := repository.StockTotals{
			ProductID:    p.ID,
			Name:         p.Name,
			Description:  p.Description,
			CategoryID:   p.CategoryID,
			Price:        p.Price,
			ReorderLevel: p.ReorderLevel,
		}
		if p.CategoryID != nil {
			if c, ok := r.s.categories[*p.CategoryID]; ok {
				row.CategoryName = c.Name
			}
		}
		if t, ok := byProduct[p.ID]; ok {
			row.In, row.Out, row.Adjustment = t.in, t.out, t.adjustment
		}
		out = append(out, row)
	}
	return out, nil
}

// ReportRepo agregados para reportes en memoria.
type ReportRepo struct{ s *Store }

func (r *ReportRepo) SupplierActivity(_ context.Context) ([]repository.SupplierActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type acc struct {
		count    int64
		t        totals
		products map[int64]struct{}
	}
	bySupplier := make(map[int64]*acc)
	for _, tx := range r.s.transactions {
		if tx.SupplierID == nil {
			continue
		}
		a, ok := bySupplier[*tx.SupplierID]
		if !ok {
			a = &acc{products: make(map[int64]struct{})}
			bySupplier[*tx.SupplierID] = a
		}
		a.count++
		a.t.add(tx)
		a.products[tx.ProductID] = struct{}{}
	}

	suppliers := sortedValues(r.s.suppliers, func(a, b entity.Supplier) bool {
		return byNameThenID(a.Name, a.ID, b.Name, b.ID)
	})
	out := make([]repository.SupplierActivity, 0, len(suppliers))
	for _, sup := range suppliers {
		row := repository.SupplierActivity{SupplierID: sup.ID, Name: sup.Name}
		if a, ok := bySupplier[sup.ID]; ok {
			row.TransactionCount = a.count
			row.TotalReceived = a.t.in
			row.TotalShipped = a.t.out
			row.ProductsHandled = int64(len(a.products))
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *ReportRepo) PeriodActivity(_ context.Context, since time.Time) (repository.PeriodActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var (
		a        repository.PeriodActivity
		t        totals
		products = make(map[int64]struct{})
	)
	for _, tx := range r.s.transactions {
		if tx.Date.Before(since) {
			continue
		}
		a.TotalTransactions++
		t.add(tx)
		products[tx.ProductID] = struct{}{}
	}
	a.TotalIn, a.TotalOut = t.in, t.out
	a.ProductsAffected = int64(len(products))
	return a, nil
}

func (r *ReportRepo) TopProductsByActivity(_ context.Context, since time.Time, limit int) ([]repository.ProductActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byProduct := make(map[int64]*repository.ProductActivity)
	for _, tx := range r.s.transactions {
		if tx.Date.Before(since) {
			continue
		}
		p, ok := r.s.products[tx.ProductID]
		if !ok {
			continue
		}
		a, ok := byProduct[p.ID]
		if !ok {
			a = &repository.ProductActivity{ProductID: p.ID, Name: p.Name}
			byProduct[p.ID] = a
		}
		a.TransactionCount++
		switch tx.Type {
		case entity.TransactionTypeIN:
			a.Received += tx.Quantity
		case entity.TransactionTypeOUT:
			a.Shipped += tx.Quantity
		}
	}

	out := make([]repository.ProductActivity, 0, len(byProduct))
	for _, a := range byProduct {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TransactionCount != out[j].TransactionCount {
			return out[i].TransactionCount > out[j].TransactionCount
		}
		return byNameThenID(out[i].Name, out[i].ProductID, out[j].Name, out[j].ProductID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

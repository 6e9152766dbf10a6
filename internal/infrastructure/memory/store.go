// Package memory implementa los puertos de persistencia en memoria.
//
// Sirve para desarrollo local (DB_DRIVER=memory) y tests. Aplica la unicidad de
// categorías y los checks de dominio, pero no las claves foráneas: la integridad
// referencial queda a cargo de las verificaciones previas de los casos de uso.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex

	categories   map[int64]entity.Category
	suppliers    map[int64]entity.Supplier
	products     map[int64]entity.Product
	transactions map[int64]entity.Transaction

	lastCategoryID    int64
	lastSupplierID    int64
	lastProductID     int64
	lastTransactionID int64

	now func() time.Time
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj usado para la fecha por defecto de las transacciones.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un store vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		categories:   make(map[int64]entity.Category),
		suppliers:    make(map[int64]entity.Supplier),
		products:     make(map[int64]entity.Product),
		transactions: make(map[int64]entity.Transaction),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repositories devuelve los repositorios de escritura atados a este store.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Categories:   &CategoryRepo{s: s},
		Suppliers:    &SupplierRepo{s: s},
		Products:     &ProductRepo{s: s},
		Transactions: &TransactionRepo{s: s},
	}
}

// Ledger devuelve el repositorio de lectura del ledger.
func (s *Store) Ledger() *LedgerRepo { return &LedgerRepo{s: s} }

// Reports devuelve el repositorio de lectura de reportes.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{s: s} }

type snapshot struct {
	categories   map[int64]entity.Category
	suppliers    map[int64]entity.Supplier
	products     map[int64]entity.Product
	transactions map[int64]entity.Transaction
	ids          [4]int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		categories:   maps.Clone(s.categories),
		suppliers:    maps.Clone(s.suppliers),
		products:     maps.Clone(s.products),
		transactions: maps.Clone(s.transactions),
		ids:          [4]int64{s.lastCategoryID, s.lastSupplierID, s.lastProductID, s.lastTransactionID},
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = snap.categories
	s.suppliers = snap.suppliers
	s.products = snap.products
	s.transactions = snap.transactions
	s.lastCategoryID, s.lastSupplierID, s.lastProductID, s.lastTransactionID = snap.ids[0], snap.ids[1], snap.ids[2], snap.ids[3]
}

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: si fn falla se restaura el estado previo.
// No aísla de escrituras concurrentes.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snap := r.s.snapshot()
	if err := fn(r.s.Repositories()); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func checkViolation(op, detail string) error {
	return fmt.Errorf("%s: %w: %s", op, domain.ErrCheckViolation, detail)
}

// sortedValues devuelve los valores de m ordenados con less.
func sortedValues[T any](m map[int64]T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byNameThenID(nameA string, idA int64, nameB string, idB int64) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store        *memory.Store
	categories   *usecase.CategoryUseCase
	suppliers    *usecase.SupplierUseCase
	products     *usecase.ProductUseCase
	transactions *usecase.TransactionUseCase
	seed         *usecase.SeedUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore(memory.WithClock(func() time.Time { return fixedNow }))
	repos := store.Repositories()
	log := logger.Nop()
	ledger := inventory.NewLedgerUseCase(store.Ledger(), repos.Transactions, log)
	return &fixture{
		store:        store,
		categories:   usecase.NewCategoryUseCase(repos.Categories, log),
		suppliers:    usecase.NewSupplierUseCase(repos.Suppliers, log),
		products:     usecase.NewProductUseCase(repos.Products, repos.Categories, ledger, log),
		transactions: usecase.NewTransactionUseCase(repos.Transactions, repos.Products, repos.Suppliers, log),
		seed:         usecase.NewSeedUseCase(memory.NewTxRunner(store), log),
	}
}

func ptr[T any](v T) *T { return &v }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// requireKind verifica el kind del error etiquetado y el sentinel envuelto.
func requireKind(t *testing.T, err error, kind domain.ErrorKind, sentinel error) {
	t.Helper()
	require.Error(t, err)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, kind, derr.Kind)
	assert.ErrorIs(t, err, sentinel)
}

func (f *fixture) mustCategory(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.categories.Create(context.Background(), dto.CategoryRequest{Name: name})
	require.NoError(t, err)
	return id
}

func (f *fixture) mustProduct(t *testing.T, in dto.ProductRequest) int64 {
	t.Helper()
	id, err := f.products.Create(context.Background(), in)
	require.NoError(t, err)
	return id
}

func (f *fixture) mustSupplier(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.suppliers.Create(context.Background(), dto.SupplierRequest{Name: name})
	require.NoError(t, err)
	return id
}

func (f *fixture) mustTransaction(t *testing.T, in dto.TransactionRequest) int64 {
	t.Helper()
	id, err := f.transactions.Create(context.Background(), in)
	require.NoError(t, err)
	return id
}

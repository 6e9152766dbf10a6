package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

func TestProduct_CreateConCategoria(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catID := f.mustCategory(t, "Electronics")

	id := f.mustProduct(t, dto.ProductRequest{Name: "Laptop", Description: "High-performance laptop", CategoryID: &catID, Price: price("999.99"), ReorderLevel: ptr(5)})

	got, err := f.products.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Electronics", got.CategoryName)
	assert.Equal(t, 5, got.ReorderLevel)
	assert.True(t, price("999.99").Equal(got.Price))
}

func TestProduct_ReorderLevelPorDefecto(t *testing.T) {
	f := newFixture(t)
	id := f.mustProduct(t, dto.ProductRequest{Name: "Tornillo", Price: price("0.10")})

	got, err := f.products.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultReorderLevel, got.ReorderLevel)
	assert.Nil(t, got.CategoryID)
	assert.Empty(t, got.CategoryName)
}

func TestProduct_CategoriaInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.products.Create(ctx, dto.ProductRequest{Name: "Huérfano", CategoryID: ptr(int64(999)), Price: price("1")})
	assert.Zero(t, id)
	requireKind(t, err, domain.KindConstraint, domain.ErrReferenceNotFound)

	list, err := f.products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProduct_PrecioNegativoEsValidacion(t *testing.T) {
	f := newFixture(t)
	id, err := f.products.Create(context.Background(), dto.ProductRequest{Name: "Malo", Price: price("-0.01")})
	assert.Zero(t, id)
	requireKind(t, err, domain.KindValidation, domain.ErrInvalidInput)
}

func TestProduct_UpdateReemplazaTodo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catID := f.mustCategory(t, "Books")
	id := f.mustProduct(t, dto.ProductRequest{Name: "Libro", CategoryID: &catID, Price: price("10"), ReorderLevel: ptr(3)})

	ok, err := f.products.Update(ctx, id, dto.ProductRequest{Name: "Libro 2ª ed.", Price: price("12.50")})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Libro 2ª ed.", got.Name)
	assert.Nil(t, got.CategoryID, "reemplazo completo: la categoría omitida queda nula")
	assert.Equal(t, entity.DefaultReorderLevel, got.ReorderLevel)

	ok, err = f.products.Update(ctx, 404, dto.ProductRequest{Name: "X", Price: price("1")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProduct_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustProduct(t, dto.ProductRequest{Name: "Laptop", Description: "High-performance laptop", Price: price("999.99")})
	f.mustProduct(t, dto.ProductRequest{Name: "Garden Hose", Description: "50ft garden hose", Price: price("29.99")})
	f.mustProduct(t, dto.ProductRequest{Name: "Descuento", Description: "100% algodón", Price: price("5")})

	hits, err := f.products.Search(ctx, "LAP")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Laptop", hits[0].Name)

	hits, err = f.products.Search(ctx, "hose")
	require.NoError(t, err)
	require.Len(t, hits, 1, "coincide por descripción o nombre")

	hits, err = f.products.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = f.products.Search(ctx, "%")
	require.NoError(t, err)
	require.Len(t, hits, 1, "el comodín se compara literalmente")
	assert.Equal(t, "Descuento", hits[0].Name)
}

func TestProduct_DeleteConTransaccionesFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.mustProduct(t, dto.ProductRequest{Name: "Laptop", Price: price("999.99")})
	f.mustTransaction(t, dto.TransactionRequest{ProductID: id, Type: "IN", Quantity: 10})

	ok, err := f.products.Delete(ctx, id)
	assert.False(t, ok)
	requireKind(t, err, domain.KindConstraint, domain.ErrHasDependents)

	other := f.mustProduct(t, dto.ProductRequest{Name: "Sin movimientos", Price: price("1")})
	ok, err = f.products.Delete(ctx, other)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProduct_GetCurrentStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catID := f.mustCategory(t, "Electronics")
	id := f.mustProduct(t, dto.ProductRequest{Name: "Laptop", CategoryID: &catID, Price: price("999.99"), ReorderLevel: ptr(5)})

	stock, err := f.products.GetCurrentStock(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, stock, "sin transacciones el stock es 0")

	f.mustTransaction(t, dto.TransactionRequest{ProductID: id, Type: "IN", Quantity: 10})
	f.mustTransaction(t, dto.TransactionRequest{ProductID: id, Type: "ADJUSTMENT", Quantity: 7})
	f.mustTransaction(t, dto.TransactionRequest{ProductID: id, Type: "OUT", Quantity: 2})

	stock, err = f.products.GetCurrentStock(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stock, "el ajuste no participa del stock")
}

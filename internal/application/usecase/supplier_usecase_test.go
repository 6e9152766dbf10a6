package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
)

func TestSupplier_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.suppliers.Create(ctx, dto.SupplierRequest{Name: "TechCorp Inc.", ContactInfo: "contact@techcorp.com"})
	require.NoError(t, err)

	_, err = f.suppliers.Create(ctx, dto.SupplierRequest{Name: "TechCorp Inc."})
	require.NoError(t, err, "el nombre de proveedor no es único")

	ok, err := f.suppliers.Update(ctx, id, dto.SupplierRequest{Name: "TechCorp", Address: "123 Tech Street"})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.suppliers.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "TechCorp", got.Name)
	assert.Empty(t, got.ContactInfo, "reemplazo completo")
	assert.Equal(t, "123 Tech Street", got.Address)

	list, err := f.suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "TechCorp", list[0].Name)

	ok, err = f.suppliers.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSupplier_NombreRequerido(t *testing.T) {
	f := newFixture(t)
	_, err := f.suppliers.Create(context.Background(), dto.SupplierRequest{ContactInfo: "x@y.z"})
	requireKind(t, err, domain.KindValidation, domain.ErrInvalidInput)
}

func TestSupplier_DeleteConTransaccionesFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supID := f.mustSupplier(t, "BookWorld")
	prodID := f.mustProduct(t, dto.ProductRequest{Name: "Book", Price: price("49.99")})
	f.mustTransaction(t, dto.TransactionRequest{ProductID: prodID, Type: "IN", Quantity: 25, SupplierID: &supID})

	ok, err := f.suppliers.Delete(ctx, supID)
	assert.False(t, ok)
	requireKind(t, err, domain.KindConstraint, domain.ErrHasDependents)
}

package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind domain.ErrorKind
	}{
		{"tipo inválido", domain.ErrInvalidTransactionType, domain.KindValidation},
		{"entrada inválida envuelta", fmt.Errorf("campo name: %w", domain.ErrInvalidInput), domain.KindValidation},
		{"duplicado", domain.ErrDuplicate, domain.KindConstraint},
		{"referencia", domain.ErrReferenceNotFound, domain.KindConstraint},
		{"dependientes", domain.ErrHasDependents, domain.KindConstraint},
		{"check", domain.ErrCheckViolation, domain.KindConstraint},
		{"conexión", errors.New("dial tcp: connection refused"), domain.KindStorage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.Classify("op", tc.err)
			assert.Equal(t, tc.kind, domain.KindOf(err))
			assert.ErrorIs(t, err, tc.err, "la causa debe seguir accesible")
		})
	}
}

func TestClassify_NilYYaEtiquetado(t *testing.T) {
	assert.NoError(t, domain.Classify("op", nil))

	tagged := domain.NewConstraintError("category.Delete", domain.ErrHasDependents)
	assert.Same(t, tagged, domain.Classify("otra", tagged))
	assert.Equal(t, domain.ErrorKind(""), domain.KindOf(errors.New("x")))
}

func TestError_Mensaje(t *testing.T) {
	err := domain.NewStorageError("product.Create", errors.New("timeout"))
	assert.Equal(t, "product.Create: storage: timeout", err.Error())
}

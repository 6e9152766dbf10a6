package usecase

import (
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
	"github.com/jhoicas/inventario-ledger/pkg/validator"
)

// validateRequest valida el DTO antes de tocar el store.
// Un tipo de transacción fuera del dominio se reporta con su propio sentinel.
func validateRequest(op string, in any) error {
	errs := validator.ValidateStruct(in)
	if errs == nil {
		return nil
	}
	for _, fe := range errs {
		if fe.Tag == "txtype" {
			return domain.NewValidationError(op, domain.ErrInvalidTransactionType)
		}
	}
	return domain.NewValidationError(op, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Summary(errs)))
}

// fail etiqueta err y lo registra en el logger.
func fail(log *logger.Logger, op string, err error) error {
	tagged := domain.Classify(op, err)
	ev := log.Warn()
	if domain.KindOf(tagged) == domain.KindStorage {
		ev = log.Error()
	}
	ev.Err(err).Str("op", op).Str("kind", string(domain.KindOf(tagged))).Msg("operación rechazada")
	return tagged
}

func missingReference(what string, id int64) error {
	return fmt.Errorf("%w: %s %d", domain.ErrReferenceNotFound, what, id)
}

func hasDependents(what string, n int64) error {
	return fmt.Errorf("%w: %d %s", domain.ErrHasDependents, n, what)
}

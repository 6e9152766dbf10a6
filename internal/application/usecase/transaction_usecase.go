package usecase

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// DefaultTransactionLimit filas devueltas por List cuando limit <= 0.
const DefaultTransactionLimit = 100

// TransactionUseCase registro y edición del ledger de transacciones.
// Las ediciones no revalidan la consistencia del stock.
type TransactionUseCase struct {
	repo      repository.TransactionRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	log       *logger.Logger
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, products repository.ProductRepository, suppliers repository.SupplierRepository, log *logger.Logger) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, products: products, suppliers: suppliers, log: log.Named("transactions")}
}

func (uc *TransactionUseCase) toTransaction(ctx context.Context, op string, id int64, in dto.TransactionRequest) (*entity.Transaction, error) {
	if err := validateRequest(op, in); err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, missingReference("producto", in.ProductID)
	}
	if in.SupplierID != nil {
		s, err := uc.suppliers.GetByID(ctx, *in.SupplierID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, missingReference("proveedor", *in.SupplierID)
		}
	}
	t := &entity.Transaction{
		ID:         id,
		ProductID:  in.ProductID,
		Type:       entity.TransactionType(in.Type),
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
		Notes:      in.Notes,
	}
	if in.Date != nil {
		t.Date = *in.Date
	}
	return t, nil
}

// Create registra una transacción. Sin fecha, el store asigna la hora actual.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.TransactionRequest) (int64, error) {
	const op = "transaction.create"
	t, err := uc.toTransaction(ctx, op, 0, in)
	if err != nil {
		return 0, fail(uc.log, op, err)
	}
	id, err := uc.repo.Create(ctx, t)
	if err != nil {
		return 0, fail(uc.log, op, err)
	}
	uc.log.Debug().Int64("id", id).Str("type", in.Type).Int64("quantity", in.Quantity).Msg("transacción registrada")
	return id, nil
}

// GetByID obtiene una transacción con nombres de producto y proveedor.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id int64) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fail(uc.log, "transaction.get", err)
	}
	if t == nil {
		return nil, nil
	}
	out := dto.NewTransactionResponse(t)
	return &out, nil
}

// List devuelve las transacciones más recientes; limit <= 0 usa DefaultTransactionLimit.
func (uc *TransactionUseCase) List(ctx context.Context, limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	list, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, fail(uc.log, "transaction.list", err)
	}
	return dto.NewTransactionList(list), nil
}

// Update reemplaza producto, tipo, cantidad, proveedor y notas. La fecha original se conserva.
func (uc *TransactionUseCase) Update(ctx context.Context, id int64, in dto.TransactionRequest) (bool, error) {
	const op = "transaction.update"
	t, err := uc.toTransaction(ctx, op, id, in)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	ok, err := uc.repo.Update(ctx, t)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	return ok, nil
}

// Delete elimina la transacción sin verificaciones adicionales.
func (uc *TransactionUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(uc.log, "transaction.delete", err)
	}
	return ok, nil
}

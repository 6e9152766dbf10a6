package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	log  *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, log: log.Named("suppliers")}
}

func toSupplier(id int64, in dto.SupplierRequest) *entity.Supplier {
	return &entity.Supplier{ID: id, Name: in.Name, ContactInfo: in.ContactInfo, Address: in.Address}
}

// Create registra un proveedor. El nombre no necesita ser único.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (int64, error) {
	const op = "supplier.create"
	in.Name = strings.TrimSpace(in.Name)
	if err := validateRequest(op, in); err != nil {
		return 0, fail(uc.log, op, err)
	}
	id, err := uc.repo.Create(ctx, toSupplier(0, in))
	if err != nil {
		return 0, fail(uc.log, op, err)
	}
	return id, nil
}

// GetByID obtiene un proveedor; nil, nil si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fail(uc.log, "supplier.get", err)
	}
	if s == nil {
		return nil, nil
	}
	out := dto.NewSupplierResponse(s)
	return &out, nil
}

// List devuelve los proveedores ordenados por nombre.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fail(uc.log, "supplier.list", err)
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSupplierResponse(s))
	}
	return out, nil
}

// Update reemplaza todos los campos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (bool, error) {
	const op = "supplier.update"
	in.Name = strings.TrimSpace(in.Name)
	if err := validateRequest(op, in); err != nil {
		return false, fail(uc.log, op, err)
	}
	ok, err := uc.repo.Update(ctx, toSupplier(id, in))
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	return ok, nil
}

// Delete elimina el proveedor si no tiene transacciones.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "supplier.delete"
	n, err := uc.repo.CountTransactions(ctx, id)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	if n > 0 {
		return false, fail(uc.log, op, hasDependents("transacciones", n))
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	return ok, nil
}

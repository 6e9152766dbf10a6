package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log.Named("categories")}
}

// Create valida y registra una categoría. El nombre debe ser único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (int64, error) {
	const op = "category.create"
	in.Name = strings.TrimSpace(in.Name)
	if err := validateRequest(op, in); err != nil {
		return 0, fail(uc.log, op, err)
	}
	id, err := uc.repo.Create(ctx, &entity.Category{Name: in.Name, Description: in.Description})
	if err != nil {
		return 0, fail(uc.log, op, err)
	}
	return id, nil
}

// GetByID obtiene una categoría; nil, nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fail(uc.log, "category.get", err)
	}
	if c == nil {
		return nil, nil
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fail(uc.log, "category.list", err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCategoryResponse(c))
	}
	return out, nil
}

// Update reemplaza nombre y descripción. false, nil si la categoría no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (bool, error) {
	const op = "category.update"
	in.Name = strings.TrimSpace(in.Name)
	if err := validateRequest(op, in); err != nil {
		return false, fail(uc.log, op, err)
	}
	ok, err := uc.repo.Update(ctx, &entity.Category{ID: id, Name: in.Name, Description: in.Description})
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	return ok, nil
}

// Delete elimina la categoría si ningún producto la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "category.delete"
	n, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	if n > 0 {
		return false, fail(uc.log, op, hasDependents("productos", n))
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	return ok, nil
}

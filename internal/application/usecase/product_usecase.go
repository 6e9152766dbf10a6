package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// StockReader fuente del stock derivado de un producto (ledger).
type StockReader interface {
	CurrentStock(ctx context.Context, productID int64) (int64, error)
}

// ProductUseCase casos de uso CRUD para productos. El stock no se guarda: se deriva del ledger.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	stock      StockReader
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, stock StockReader, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, stock: stock, log: log.Named("products")}
}

// toProduct arma la entidad; sin nivel de reorden se usa el valor por defecto.
func (uc *ProductUseCase) toProduct(ctx context.Context, op string, id int64, in dto.ProductRequest) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateRequest(op, in); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		c, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, missingReference("categoría", *in.CategoryID)
		}
	}
	reorder := entity.DefaultReorderLevel
	if in.ReorderLevel != nil {
		reorder = *in.ReorderLevel
	}
	return &entity.Product{
		ID:           id,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Price:        in.Price,
		ReorderLevel: reorder,
	}, nil
}

// Create registra un producto. La categoría, si se indica, debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	const op = "product.create"
	p, err := uc.toProduct(ctx, op, 0, in)
	if err != nil {
		return 0, fail(uc.log, op, err)
	}
	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return 0, fail(uc.log, op, err)
	}
	return id, nil
}

// GetByID obtiene un producto con su categoría; nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fail(uc.log, "product.get", err)
	}
	if p == nil {
		return nil, nil
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// List devuelve los productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fail(uc.log, "product.list", err)
	}
	return toProductList(list), nil
}

// Search busca term en nombre o descripción sin distinguir mayúsculas.
func (uc *ProductUseCase) Search(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(ctx, term)
	if err != nil {
		return nil, fail(uc.log, "product.search", err)
	}
	return toProductList(list), nil
}

// Update reemplaza todos los campos mutables del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (bool, error) {
	const op = "product.update"
	p, err := uc.toProduct(ctx, op, id, in)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	ok, err := uc.repo.Update(ctx, p)
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	return ok, nil
}

// Delete elimina el producto si no tiene transacciones.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "product.delete"
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

// GetCurrentStock delega en el ledger. 0 si el producto no tiene transacciones.
func (uc *ProductUseCase) GetCurrentStock(ctx context.Context, productID int64) (int64, error) {
	n, err := uc.stock.CurrentStock(ctx, productID)
	if err != nil {
		return 0, fail(uc.log, "product.stock", err)
	}
	return n, nil
}

func toProductList(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProductResponse(p))
	}
	return out
}

package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name, description string
	category          int // índice en seedCategories
	price             string
	reorderLevel      int
}

type seedTransaction struct {
	product  int // índice en seedProducts
	txType   entity.TransactionType
	quantity int64
	supplier int // índice en seedSuppliers; -1 sin proveedor
	notes    string
}

var seedCategories = []entity.Category{
	{Name: "Electronics", Description: "Electronic devices and components"},
	{Name: "Clothing", Description: "Apparel and accessories"},
	{Name: "Books", Description: "Books and publications"},
	{Name: "Home & Garden", Description: "Home improvement and garden supplies"},
}

var seedSuppliers = []entity.Supplier{
	{Name: "TechCorp Inc.", ContactInfo: "contact@techcorp.com", Address: "123 Tech Street, Silicon Valley, CA"},
	{Name: "Fashion Forward", ContactInfo: "orders@fashionforward.com", Address: "456 Fashion Ave, New York, NY"},
	{Name: "BookWorld", ContactInfo: "sales@bookworld.com", Address: "789 Library Lane, Boston, MA"},
	{Name: "Home Depot", ContactInfo: "orders@homedepot.com", Address: "321 Hardware Road, Atlanta, GA"},
}

var seedProducts = []seedProduct{
	{"Laptop", "High-performance laptop", 0, "999.99", 5},
	{"T-Shirt", "Cotton t-shirt", 1, "19.99", 20},
	{"Python Programming Book", "Learn Python programming", 2, "49.99", 10},
	{"Garden Hose", "50ft garden hose", 3, "29.99", 15},
}

var seedTransactions = []seedTransaction{
	{0, entity.TransactionTypeIN, 10, 0, "Initial stock"},
	{1, entity.TransactionTypeIN, 50, 1, "Initial stock"},
	{2, entity.TransactionTypeIN, 25, 2, "Initial stock"},
	{3, entity.TransactionTypeIN, 30, 3, "Initial stock"},
	{0, entity.TransactionTypeOUT, 2, -1, "Customer sale"},
	{1, entity.TransactionTypeOUT, 5, -1, "Customer sale"},
}

// SeedUseCase carga los datos de ejemplo en un store vacío.
type SeedUseCase struct {
	tx  repository.TxRunner
	log *logger.Logger
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(tx repository.TxRunner, log *logger.Logger) *SeedUseCase {
	return &SeedUseCase{tx: tx, log: log.Named("seed")}
}

// SeedIfEmpty inserta categorías, proveedores, productos y transacciones de ejemplo
// en una sola transacción. Si ya hay categorías no hace nada y devuelve false.
func (uc *SeedUseCase) SeedIfEmpty(ctx context.Context) (bool, error) {
	const op = "seed.sample_data"
	seeded := false
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Categories.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		categoryIDs := make([]int64, len(seedCategories))
		for i, c := range seedCategories {
			if categoryIDs[i], err = repos.Categories.Create(ctx, &c); err != nil {
				return fmt.Errorf("categoría %q: %w", c.Name, err)
			}
		}
		supplierIDs := make([]int64, len(seedSuppliers))
		for i, s := range seedSuppliers {
			if supplierIDs[i], err = repos.Suppliers.Create(ctx, &s); err != nil {
				return fmt.Errorf("proveedor %q: %w", s.Name, err)
			}
		}
		productIDs := make([]int64, len(seedProducts))
		for i, p := range seedProducts {
			categoryID := categoryIDs[p.category]
			product := &entity.Product{
				Name:         p.name,
				Description:  p.description,
				CategoryID:   &categoryID,
				Price:        decimal.RequireFromString(p.price),
				ReorderLevel: p.reorderLevel,
			}
			if productIDs[i], err = repos.Products.Create(ctx, product); err != nil {
				return fmt.Errorf("producto %q: %w", p.name, err)
			}
		}
		for _, t := range seedTransactions {
			tx := &entity.Transaction{
				ProductID: productIDs[t.product],
				Type:      t.txType,
				Quantity:  t.quantity,
				Notes:     t.notes,
			}
			if t.supplier >= 0 {
				supplierID := supplierIDs[t.supplier]
				tx.SupplierID = &supplierID
			}
			if _, err := repos.Transactions.Create(ctx, tx); err != nil {
				return fmt.Errorf("transacción %s: %w", t.txType, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fail(uc.log, op, err)
	}
	if seeded {
		uc.log.Info().
			Int("categories", len(seedCategories)).
			Int("suppliers", len(seedSuppliers)).
			Int("products", len(seedProducts)).
			Int("transactions", len(seedTransactions)).
			Msg("datos de ejemplo cargados")
	}
	return seeded, nil
}

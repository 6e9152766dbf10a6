package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/analytics"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	SupplierUC       *usecase.SupplierUseCase
	ProductUC        *usecase.ProductUseCase
	TransactionUC    *usecase.TransactionUseCase
	LedgerUC         *inventory.LedgerUseCase
	ReportUC         *analytics.ReportUseCase
	TransactionLimit int // ?limit por defecto en GET /transactions
	HistoryDays      int // ?days por defecto en GET /inventory/history
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// /search antes de /:id
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.Stock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.TransactionLimit)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.HistoryDays)
	inv.Get("/", inventoryHandler.Current)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/value", inventoryHandler.Value)
	inv.Get("/history", inventoryHandler.History)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/categories", reportHandler.Categories)
	reports.Get("/suppliers", reportHandler.Suppliers)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/top-valued", reportHandler.TopValued)
	reports.Get("/value", reportHandler.Value)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/transactions", reportHandler.Transactions)
	reports.Get("/comprehensive", reportHandler.Comprehensive)
	reports.Get("/comprehensive.pdf", reportHandler.ComprehensivePDF)
}

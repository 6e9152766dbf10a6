package bootstrap

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/inventario-ledger/internal/application/analytics"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Services casos de uso cableados sobre un Store.
type Services struct {
	Categories   *usecase.CategoryUseCase
	Suppliers    *usecase.SupplierUseCase
	Products     *usecase.ProductUseCase
	Transactions *usecase.TransactionUseCase
	Seed         *usecase.SeedUseCase
	Ledger       *inventory.LedgerUseCase
	Reports      *analytics.ReportUseCase
}

// NewServices construye los casos de uso. now reemplaza el reloj (nil = time.Now).
func NewServices(store *Store, cfg *config.Config, log *logger.Logger, now func() time.Time) *Services {
	if now == nil {
		now = time.Now
	}
	repos := store.Repos
	ledger := inventory.NewLedgerUseCase(store.Ledger, repos.Transactions, log, inventory.WithClock(now))
	return &Services{
		Categories:   usecase.NewCategoryUseCase(repos.Categories, log),
		Suppliers:    usecase.NewSupplierUseCase(repos.Suppliers, log),
		Products:     usecase.NewProductUseCase(repos.Products, repos.Categories, ledger, log),
		Transactions: usecase.NewTransactionUseCase(repos.Transactions, repos.Products, repos.Suppliers, log),
		Seed:         usecase.NewSeedUseCase(store.Tx, log),
		Ledger:       ledger,
		Reports: analytics.NewReportUseCase(
			ledger,
			repos.Categories,
			store.Reports,
			infrapdf.NewReportPDFGenerator(cfg.App.Name),
			log,
			analytics.Options{
				HistoryDays: cfg.Report.HistoryDays,
				TopN:        cfg.Report.TopN,
				Now:         now,
			},
		),
	}
}

// NewHTTPApp construye la aplicación Fiber con middlewares y rutas.
func NewHTTPApp(cfg *config.Config, svc *Services, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       svc.Categories,
		SupplierUC:       svc.Suppliers,
		ProductUC:        svc.Products,
		TransactionUC:    svc.Transactions,
		LedgerUC:         svc.Ledger,
		ReportUC:         svc.Reports,
		TransactionLimit: cfg.Report.TransactionLimit,
		HistoryDays:      cfg.Report.HistoryDays,
	})
	return app
}

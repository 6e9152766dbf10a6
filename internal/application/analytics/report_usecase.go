// Package analytics contiene los reportes agregados de solo lectura sobre el ledger.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	ledger "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Options parámetros de los reportes.
type Options struct {
	HistoryDays int              // ventana del reporte de transacciones (30)
	TopN        int              // productos en los rankings (5)
	Now         func() time.Time // reloj; por defecto time.Now
}

// ReportUseCase compone los reportes a partir del ledger y de las consultas de ReportRepository.
//
// Cada reporte se calcula con lecturas independientes; no hay snapshot común entre secciones.
type ReportUseCase struct {
	inventory  InventorySource
	categories repository.CategoryRepository
	reports    repository.ReportRepository
	pdf        ReportPDFGenerator
	log        *logger.Logger
	opts       Options
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta PDF.
func NewReportUseCase(
	inventory InventorySource,
	categories repository.CategoryRepository,
	reports repository.ReportRepository,
	pdf ReportPDFGenerator,
	log *logger.Logger,
	opts Options,
) *ReportUseCase {
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = 30
	}
	if opts.TopN <= 0 {
		opts.TopN = 5
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ReportUseCase{
		inventory:  inventory,
		categories: categories,
		reports:    reports,
		pdf:        pdf,
		log:        log.Named("reports"),
		opts:       opts,
	}
}

func (uc *ReportUseCase) fail(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("reporte falló")
	return domain.Classify(op, err)
}

// CategoryReport agrega productos, stock, precio promedio y valor por categoría.
// Las categorías sin productos aparecen con ceros. Orden: valor total descendente, empates por nombre.
func (uc *ReportUseCase) CategoryReport(ctx context.Context) ([]dto.CategoryReportRow, error) {
	const op = "report.categories"
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, uc.fail(op, err)
	}
	items, err := uc.inventory.Items(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]entity.Category, 0, len(list))
	for _, c := range list {
		categories = append(categories, *c)
	}
	summary := ledger.SummarizeByCategory(categories, items)
	out := make([]dto.CategoryReportRow, 0, len(summary))
	for _, s := range summary {
		out = append(out, dto.CategoryReportRow{
			CategoryID:   s.CategoryID,
			CategoryName: s.Name,
			ProductCount: s.ProductCount,
			TotalStock:   s.TotalStock,
			AvgPrice:     s.AvgPrice,
			TotalValue:   s.TotalValue,
		})
	}
	return out, nil
}

// SupplierReport actividad por proveedor, incluidos los que no tienen transacciones.
// Orden: cantidad de transacciones descendente, empates por nombre.
func (uc *ReportUseCase) SupplierReport(ctx context.Context) ([]dto.SupplierReportRow, error) {
	rows, err := uc.reports.SupplierActivity(ctx)
	if err != nil {
		return nil, uc.fail("report.suppliers", err)
	}
	out := make([]dto.SupplierReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SupplierReportRow{
			SupplierID:       r.SupplierID,
			SupplierName:     r.Name,
			TransactionCount: r.TransactionCount,
			TotalReceived:    r.TotalReceived,
			TotalShipped:     r.TotalShipped,
			ProductsHandled:  r.ProductsHandled,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TransactionCount > out[j].TransactionCount
	})
	return out, nil
}

// MonthStart primer instante del mes calendario de t en UTC.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlySummary resume las transacciones desde el inicio del mes en curso.
// La ventana no tiene límite superior.
func (uc *ReportUseCase) MonthlySummary(ctx context.Context) (dto.MonthlySummaryDTO, error) {
	const op = "report.monthly"
	from := MonthStart(uc.opts.Now())

	activity, err := uc.reports.PeriodActivity(ctx, from)
	if err != nil {
		return dto.MonthlySummaryDTO{}, uc.fail(op, err)
	}
	top, err := uc.reports.TopProductsByActivity(ctx, from, uc.opts.TopN)
	if err != nil {
		return dto.MonthlySummaryDTO{}, uc.fail(op, err)
	}

	out := dto.MonthlySummaryDTO{
		Month:             from.Format("2006-01"),
		From:              from,
		TotalTransactions: activity.TotalTransactions,
		TotalIn:           activity.TotalIn,
		TotalOut:          activity.TotalOut,
		ProductsAffected:  activity.ProductsAffected,
		NetChange:         activity.TotalIn - activity.TotalOut,
		TopProducts:       make([]dto.MonthlyProductDTO, 0, len(top)),
	}
	for _, p := range top {
		out.TopProducts = append(out.TopProducts, dto.MonthlyProductDTO{
			ProductID:        p.ProductID,
			ProductName:      p.Name,
			TransactionCount: p.TransactionCount,
			Received:         p.Received,
			Shipped:          p.Shipped,
		})
	}
	return out, nil
}

// TopValuedProducts productos con mayor stock × precio, excluyendo stock <= 0.
func (uc *ReportUseCase) TopValuedProducts(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	items, err := uc.inventory.Items(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryList(ledger.TopValued(items, uc.opts.TopN)), nil
}

// InventoryValueReport valorización más los productos de mayor valor.
func (uc *ReportUseCase) InventoryValueReport(ctx context.Context) (dto.InventoryValueReportDTO, error) {
	items, err := uc.inventory.Items(ctx)
	if err != nil {
		return dto.InventoryValueReportDTO{}, err
	}
	return dto.InventoryValueReportDTO{
		InventoryValueDTO: dto.NewInventoryValue(ledger.Value(items)),
		TopProducts:       dto.NewInventoryList(ledger.TopValued(items, uc.opts.TopN)),
	}, nil
}

// LowStockReport productos en o bajo el nivel de reorden con la cantidad a pedir.
func (uc *ReportUseCase) LowStockReport(ctx context.Context) (dto.LowStockReportDTO, error) {
	items, err := uc.inventory.Items(ctx)
	if err != nil {
		return dto.LowStockReportDTO{}, err
	}
	low := dto.NewLowStockList(ledger.LowStock(items))
	return dto.LowStockReportDTO{Count: len(low), Items: low}, nil
}

// TransactionReport transacciones de los últimos days días; days <= 0 usa la ventana configurada.
func (uc *ReportUseCase) TransactionReport(ctx context.Context, days int) (dto.TransactionReportDTO, error) {
	if days <= 0 {
		days = uc.opts.HistoryDays
	}
	list, err := uc.inventory.TransactionHistory(ctx, days)
	if err != nil {
		return dto.TransactionReportDTO{}, err
	}
	return dto.TransactionReportDTO{
		Days:         days,
		Since:        uc.inventory.HistorySince(days),
		Transactions: list,
	}, nil
}

// ComprehensiveReport compone todas las secciones. Cada una se lee por separado.
func (uc *ReportUseCase) ComprehensiveReport(ctx context.Context) (*dto.ComprehensiveReportDTO, error) {
	items, err := uc.inventory.Items(ctx)
	if err != nil {
		return nil, err
	}
	low := dto.NewLowStockList(ledger.LowStock(items))

	categories, err := uc.CategoryReport(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.TransactionReport(ctx, uc.opts.HistoryDays)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.MonthlySummary(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.ComprehensiveReportDTO{
		ID:                 uuid.New().String(),
		GeneratedAt:        uc.opts.Now(),
		Value:              dto.NewInventoryValue(ledger.Value(items)),
		LowStockAlertCount: len(low),
		Inventory:          dto.NewInventoryList(items),
		Categories:         categories,
		RecentTransactions: recent,
		Monthly:            monthly,
	}
	if len(low) > 0 {
		report.LowStock = low
	}
	uc.log.Info().Str("report_id", report.ID).Int("products", len(items)).Msg("reporte completo generado")
	return report, nil
}

// ExportComprehensivePDF genera el reporte completo y lo renderiza en PDF.
func (uc *ReportUseCase) ExportComprehensivePDF(ctx context.Context) (*dto.ComprehensiveReportDTO, []byte, error) {
	const op = "report.comprehensive_pdf"
	if uc.pdf == nil {
		return nil, nil, uc.fail(op, errPDFUnavailable)
	}
	report, err := uc.ComprehensiveReport(ctx)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.pdf.ComprehensiveReport(report)
	if err != nil {
		return nil, nil, uc.fail(op, err)
	}
	return report, data, nil
}

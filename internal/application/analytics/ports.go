package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	ledger "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// InventorySource lecturas del ledger que consumen los reportes.
// La implementa inventory.LedgerUseCase.
type InventorySource interface {
	Items(ctx context.Context) ([]ledger.Item, error)
	HistorySince(days int) time.Time
	TransactionHistory(ctx context.Context, days int) ([]dto.TransactionResponse, error)
}

// ReportPDFGenerator renderiza el reporte completo en PDF.
type ReportPDFGenerator interface {
	ComprehensiveReport(report *dto.ComprehensiveReportDTO) ([]byte, error)
}

var errPDFUnavailable = errors.New("generador de PDF no configurado")

package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
)

func sampleReport() *dto.ComprehensiveReportDTO {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	catID := int64(1)
	laptop := dto.InventoryItemDTO{
		ProductID:    1,
		Name:         "Laptop",
		CategoryID:   &catID,
		CategoryName: "Electronics",
		Price:        decimal.RequireFromString("999.99"),
		ReorderLevel: 5,
		CurrentStock: 8,
		Value:        decimal.RequireFromString("7999.92"),
	}
	cable := dto.InventoryItemDTO{
		ProductID:    2,
		Name:         "Cable",
		Price:        decimal.RequireFromString("4.50"),
		ReorderLevel: 10,
		Value:        decimal.Zero,
	}
	supplierID := int64(1)
	return &dto.ComprehensiveReportDTO{
		ID:          "5f0c3d4e-1111-4222-8333-944455556666",
		GeneratedAt: now,
		Value: dto.InventoryValueDTO{
			TotalValue:    decimal.RequireFromString("7999.92"),
			AvgPrice:      decimal.RequireFromString("502.245"),
			TotalProducts: 2,
		},
		LowStockAlertCount: 1,
		Inventory:          []dto.InventoryItemDTO{cable, laptop},
		LowStock:           []dto.LowStockItemDTO{{InventoryItemDTO: cable, NeedToOrder: 10}},
		Categories: []dto.CategoryReportRow{{
			CategoryID: 1, CategoryName: "Electronics", ProductCount: 1, TotalStock: 8,
			AvgPrice: decimal.RequireFromString("999.99"), TotalValue: decimal.RequireFromString("7999.92"),
		}},
		RecentTransactions: dto.TransactionReportDTO{
			Days:  30,
			Since: now.AddDate(0, 0, -30),
			Transactions: []dto.TransactionResponse{{
				ID: 1, ProductID: 1, ProductName: "Laptop", Type: "IN", Quantity: 10,
				Date: now.AddDate(0, 0, -2), SupplierID: &supplierID, SupplierName: "TechCorp Inc.",
			}},
		},
		Monthly: dto.MonthlySummaryDTO{
			Month: "2024-03", From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			TotalTransactions: 1, TotalIn: 10, ProductsAffected: 1, NetChange: 10,
			TopProducts: []dto.MonthlyProductDTO{{ProductID: 1, ProductName: "Laptop", TransactionCount: 1, Received: 10}},
		},
	}
}

func TestReportPDFGenerator_ComprehensiveReport(t *testing.T) {
	g := pdf.NewReportPDFGenerator("inventario-ledger")

	out, err := g.ComprehensiveReport(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe ser un PDF")
}

func TestReportPDFGenerator_ReporteVacio(t *testing.T) {
	g := pdf.NewReportPDFGenerator("inventario-ledger")

	out, err := g.ComprehensiveReport(&dto.ComprehensiveReportDTO{
		ID:                 "vacío",
		GeneratedAt:        time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Monthly:            dto.MonthlySummaryDTO{Month: "2024-03"},
		RecentTransactions: dto.TransactionReportDTO{Days: 30},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

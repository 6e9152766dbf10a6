package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryReportRow fila del reporte por categoría.
type CategoryReportRow struct {
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ProductCount int             `json:"product_count"`
	TotalStock   int64           `json:"total_stock"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// SupplierReportRow fila del reporte por proveedor.
type SupplierReportRow struct {
	SupplierID       int64  `json:"supplier_id"`
	SupplierName     string `json:"supplier_name"`
	TransactionCount int64  `json:"transaction_count"`
	TotalReceived    int64  `json:"total_received"`
	TotalShipped     int64  `json:"total_shipped"`
	ProductsHandled  int64  `json:"products_handled"`
}

// MonthlyProductDTO producto del top mensual por número de transacciones.
type MonthlyProductDTO struct {
	ProductID        int64  `json:"product_id"`
	ProductName      string `json:"product_name"`
	TransactionCount int64  `json:"transaction_count"`
	Received         int64  `json:"received"`
	Shipped          int64  `json:"shipped"`
}

// MonthlySummaryDTO resumen del mes calendario en curso.
type MonthlySummaryDTO struct {
	Month             string              `json:"month"` // YYYY-MM
	From              time.Time           `json:"from"`
	TotalTransactions int64               `json:"total_transactions"`
	TotalIn           int64               `json:"total_in"`
	TotalOut          int64               `json:"total_out"`
	ProductsAffected  int64               `json:"products_affected"`
	NetChange         int64               `json:"net_change"`
	TopProducts       []MonthlyProductDTO `json:"top_products"`
}

// InventoryValueReportDTO valorización más los productos de mayor valor.
type InventoryValueReportDTO struct {
	InventoryValueDTO
	TopProducts []InventoryItemDTO `json:"top_products"`
}

// LowStockReportDTO productos a reponer.
type LowStockReportDTO struct {
	Count int               `json:"count"`
	Items []LowStockItemDTO `json:"items"`
}

// TransactionReportDTO transacciones de los últimos Days días.
type TransactionReportDTO struct {
	Days         int                   `json:"days"`
	Since        time.Time             `json:"since"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ComprehensiveReportDTO reporte completo; cada sección se calcula por separado.
type ComprehensiveReportDTO struct {
	ID                 string               `json:"id"`
	GeneratedAt        time.Time            `json:"generated_at"`
	Value              InventoryValueDTO    `json:"value"`
	LowStockAlertCount int                  `json:"low_stock_alert_count"`
	Inventory          []InventoryItemDTO   `json:"inventory"`
	LowStock           []LowStockItemDTO    `json:"low_stock,omitempty"`
	Categories         []CategoryReportRow  `json:"categories"`
	RecentTransactions TransactionReportDTO `json:"recent_transactions"`
	Monthly            MonthlySummaryDTO    `json:"monthly"`
}

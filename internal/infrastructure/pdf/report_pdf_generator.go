// Package pdf renderiza el reporte completo de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + id del reporte │ fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: valor total / precio promedio / alertas           │
//	│  TABLA: inventario actual                                   │
//	│  TABLA: bajo stock (solo si hay filas)                      │
//	│  TABLA: categorías                                          │
//	│  MES EN CURSO + transacciones recientes                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const uncategorized = "Uncategorized"

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type ReportPDFGenerator struct {
	appName string
}

// NewReportPDFGenerator construye el generador. appName aparece como autor del documento.
func NewReportPDFGenerator(appName string) *ReportPDFGenerator {
	return &ReportPDFGenerator{appName: appName}
}

// ComprehensiveReport genera el PDF del reporte completo y devuelve sus bytes.
func (g *ReportPDFGenerator) ComprehensiveReport(r *dto.ComprehensiveReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))

	m.AddRows(sectionRow("INVENTARIO ACTUAL"))
	m.AddRows(tableHeader([]string{"Producto", "Categoría", "Precio", "Stock", "Reorden", "Valor"}, []int{4, 2, 2, 1, 1, 2}))
	m.AddRows(inventoryRows(r.Inventory)...)

	if len(r.LowStock) > 0 {
		m.AddRows(sectionRow("BAJO STOCK"))
		m.AddRows(tableHeader([]string{"Producto", "Stock", "Reorden", "A pedir"}, []int{6, 2, 2, 2}))
		m.AddRows(lowStockRows(r.LowStock)...)
	}

	m.AddRows(sectionRow("CATEGORÍAS"))
	m.AddRows(tableHeader([]string{"Categoría", "Productos", "Stock", "Precio prom.", "Valor"}, []int{4, 2, 2, 2, 2}))
	m.AddRows(categoryRows(r.Categories)...)

	m.AddRows(sectionRow("MES EN CURSO " + r.Monthly.Month))
	m.AddRows(monthlyRow(r.Monthly))

	m.AddRows(sectionRow(fmt.Sprintf("TRANSACCIONES ÚLTIMOS %d DÍAS", r.RecentTransactions.Days)))
	m.AddRows(tableHeader([]string{"Fecha", "Producto", "Tipo", "Cant.", "Proveedor"}, []int{2, 4, 2, 1, 3}))
	m.AddRows(transactionRows(r.RecentTransactions.Transactions)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *dto.ComprehensiveReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+r.ID, props.Text{Size: 7, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func summaryRow(r *dto.ComprehensiveReportDTO) core.Row {
	alert := props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}
	if r.LowStockAlertCount > 0 {
		alert.Color = colorAlert
	}
	cell := func(label, value string, p props.Text) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, p),
		)
	}
	value := props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}
	return row.New(14).Add(
		cell("Valor total", r.Value.TotalValue.StringFixed(2), value),
		cell("Precio promedio", r.Value.AvgPrice.StringFixed(2), value),
		cell("Productos", strconv.Itoa(r.Value.TotalProducts), value),
		cell("Alertas de bajo stock", strconv.Itoa(r.LowStockAlertCount), alert),
	)
}

func sectionRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4,
		}),
	))
}

// tableHeader: etiquetas en negrita; sizes debe sumar 12.
func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func cells(sizes []int, values ...string) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1})))
	}
	return row.New(5).Add(cols...)
}

func inventoryRows(items []dto.InventoryItemDTO) []core.Row {
	sizes := []int{4, 2, 2, 1, 1, 2}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, cells(sizes,
			it.Name,
			nonEmpty(it.CategoryName, uncategorized),
			it.Price.StringFixed(2),
			strconv.FormatInt(it.CurrentStock, 10),
			strconv.Itoa(it.ReorderLevel),
			it.Value.StringFixed(2),
		))
	}
	return rows
}

func lowStockRows(items []dto.LowStockItemDTO) []core.Row {
	sizes := []int{6, 2, 2, 2}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, cells(sizes,
			it.Name,
			strconv.FormatInt(it.CurrentStock, 10),
			strconv.Itoa(it.ReorderLevel),
			strconv.FormatInt(it.NeedToOrder, 10),
		))
	}
	return rows
}

func categoryRows(list []dto.CategoryReportRow) []core.Row {
	sizes := []int{4, 2, 2, 2, 2}
	rows := make([]core.Row, 0, len(list))
	for _, c := range list {
		rows = append(rows, cells(sizes,
			c.CategoryName,
			strconv.Itoa(c.ProductCount),
			strconv.FormatInt(c.TotalStock, 10),
			c.AvgPrice.StringFixed(2),
			c.TotalValue.StringFixed(2),
		))
	}
	return rows
}

func monthlyRow(s dto.MonthlySummaryDTO) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Transacciones: %d   |   Entradas: %d   |   Salidas: %d   |   Cambio neto: %d   |   Productos: %d",
			s.TotalTransactions, s.TotalIn, s.TotalOut, s.NetChange, s.ProductsAffected,
		), props.Text{Size: 8, Top: 1}),
	))
}

func transactionRows(list []dto.TransactionResponse) []core.Row {
	sizes := []int{2, 4, 2, 1, 3}
	rows := make([]core.Row, 0, len(list))
	for _, t := range list {
		rows = append(rows, cells(sizes,
			t.Date.Format("2006-01-02"),
			t.ProductName,
			t.Type,
			strconv.FormatInt(t.Quantity, 10),
			nonEmpty(t.SupplierName, "-"),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

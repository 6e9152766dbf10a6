package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/analytics"
)

// ReportHandler expone los reportes agregados (solo lectura).
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Categories godoc
// @Summary      Reporte por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.CategoryReportRow
// @Router       /api/reports/categories [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.CategoryReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Reporte por proveedor
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.SupplierReportRow
// @Router       /api/reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.SupplierReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Resumen del mes en curso
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.MonthlySummaryDTO
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.MonthlySummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopValued godoc
// @Summary      Productos de mayor valor
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/reports/top-valued [get]
func (h *ReportHandler) TopValued(c *fiber.Ctx) error {
	out, err := h.uc.TopValuedProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Value godoc
// @Summary      Reporte de valorización
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryValueReportDTO
// @Router       /api/reports/value [get]
func (h *ReportHandler) Value(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValueReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Reporte de bajo stock
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.LowStockReportDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Reporte de transacciones
// @Tags         reports
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200   {object}  dto.TransactionReportDTO
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) Transactions(c *fiber.Ctx) error {
	out, err := h.uc.TransactionReport(c.Context(), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Comprehensive godoc
// @Summary      Reporte completo
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ComprehensiveReportDTO
// @Router       /api/reports/comprehensive [get]
func (h *ReportHandler) Comprehensive(c *fiber.Ctx) error {
	out, err := h.uc.ComprehensiveReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ComprehensivePDF godoc
// @Summary      Reporte completo en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/comprehensive.pdf [get]
func (h *ReportHandler) ComprehensivePDF(c *fiber.Ctx) error {
	report, data, err := h.uc.ExportComprehensivePDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-`+report.ID+`.pdf"`)
	return c.Send(data)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// InventoryHandler expone las lecturas derivadas del ledger.
type InventoryHandler struct {
	uc          *inventory.LedgerUseCase
	defaultDays int
}

// NewInventoryHandler construye el handler. defaultDays es la ventana del historial sin ?days
// (<= 0 usa inventory.DefaultHistoryDays).
func NewInventoryHandler(uc *inventory.LedgerUseCase, defaultDays int) *InventoryHandler {
	if defaultDays <= 0 {
		defaultDays = inventory.DefaultHistoryDays
	}
	return &InventoryHandler{uc: uc, defaultDays: defaultDays}
}

// Current godoc
// @Summary      Inventario actual
// @Description  Una fila por producto con stock derivado (Σ IN − Σ OUT) y valor.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/inventory [get]
func (h *InventoryHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.CurrentInventory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con bajo stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStockProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Value godoc
// @Summary      Valorización del inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryValueDTO
// @Router       /api/inventory/value [get]
func (h *InventoryHandler) Value(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValue(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de transacciones
// @Tags         inventory
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (REPORT_HISTORY_DAYS si se omite)"
// @Success      200   {array}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.TransactionHistory(c.Context(), c.QueryInt("days", h.defaultDays))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
)

// TransactionHandler maneja las peticiones HTTP del ledger de transacciones.
type TransactionHandler struct {
	uc           *usecase.TransactionUseCase
	defaultLimit int
}

// NewTransactionHandler construye el handler. defaultLimit aplica cuando no se envía ?limit.
func NewTransactionHandler(uc *usecase.TransactionUseCase, defaultLimit int) *TransactionHandler {
	return &TransactionHandler{uc: uc, defaultLimit: defaultLimit}
}

// Create godoc
// @Summary      Registrar transacción
// @Description  transaction_type: IN, OUT o ADJUSTMENT. Sin date se usa la hora actual.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, id)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "transacción")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar transacciones recientes
// @Tags         transactions
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryInt("limit", h.defaultLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar transacción
// @Description  La fecha original se conserva.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la transacción"
// @Param        body  body  dto.TransactionRequest  true  "Datos de la transacción"
// @Success      200   {object}  dto.ResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	updated, err := h.uc.Update(c.Context(), id, in)
	return mutationResult(c, updated, err, "transacción")
}

// Delete godoc
// @Summary      Eliminar transacción
// @Tags         transactions
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(c.Context(), id)
	return mutationResult(c, deleted, err, "transacción")
}

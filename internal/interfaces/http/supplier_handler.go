package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP para Supplier.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
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
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del proveedor"
// @Param        body  body  dto.SupplierRequest  true  "Datos del proveedor"
// @Success      200   {object}  dto.ResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	updated, err := h.uc.Update(c.Context(), id, in)
	return mutationResult(c, updated, err, "proveedor")
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Description  Falla con 409 si alguna transacción lo referencia.
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(c.Context(), id)
	return mutationResult(c, deleted, err, "proveedor")
}

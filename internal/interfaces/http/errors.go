package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// respondError traduce un error de caso de uso a status HTTP y ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return fiber.StatusBadRequest, "INVALID_TRANSACTION_TYPE"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrHasDependents):
		return fiber.StatusConflict, "HAS_DEPENDENTS"
	case errors.Is(err, domain.ErrReferenceNotFound):
		return fiber.StatusUnprocessableEntity, "REFERENCE_NOT_FOUND"
	case errors.Is(err, domain.ErrCheckViolation):
		return fiber.StatusUnprocessableEntity, "CHECK_VIOLATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	}
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return fiber.StatusBadRequest, "VALIDATION"
	case domain.KindConstraint:
		return fiber.StatusConflict, "CONSTRAINT"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: what + " no encontrado"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee el parámetro :id; ok=false si ya se respondió con 400.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
		return 0, false
	}
	return int64(id), true
}

// mutationResult responde a Update/Delete: 404 si no hubo fila, 200 en otro caso.
func mutationResult(c *fiber.Ctx, ok bool, err error, what string) error {
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return notFound(c, what)
	}
	return c.JSON(dto.ResultResponse{Success: true})
}

func created(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

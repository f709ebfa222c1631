package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain"
)

// writeError traduce los errores de dominio a respuestas HTTP.
//
//   - ValidationError   → 400 con la lista de campos.
//   - ErrNotFound       → 404.
//   - ErrDuplicate      → 409.
//   - ErrEmptyInvoice   → 422.
//   - PersistenceError  → 500; applied es el resultado de la mutación que quedó en memoria.
func writeError(c *fiber.Ctx, err error, applied any) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "entrada inválida", Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyInvoice):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_INVOICE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.IsPersistence(err):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.PersistenceWarningResponse{
			Code:    "PERSISTENCE",
			Message: "el cambio se aplicó pero no se pudo guardar; puede perderse al reiniciar: " + err.Error(),
			Applied: applied,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

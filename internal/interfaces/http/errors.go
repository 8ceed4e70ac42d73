package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
)

// respondError traduce la taxonomía de errores del dominio a HTTP. Los
// cuerpos de 403 y 404 son uniformes: un 403 no revela nada del recurso más
// allá de la clase de estado.
func respondError(c *fiber.Ctx, err error) error {
	if verr, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:       "VALIDATION",
			Message:    "validación fallida",
			Violations: verr.Violations,
		})
	}
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:       "CONFLICT",
			Message:    "el valor ya está en uso",
			Violations: []domain.FieldViolation{{Field: conflict.Field, Message: "This value is already used."}},
		})
	}
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el valor ya está en uso"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los handlers HTTP los mapean
// a códigos de estado; ninguno es fatal para el proceso.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("autenticación requerida")
	ErrForbidden    = errors.New("acceso denegado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// FieldViolation una violación de validación atribuida a un campo concreto.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega violaciones por campo y se reporta como un único
// fallo visible al cliente (clase bad-request, nunca error de servidor).
type ValidationError struct {
	Violations []FieldViolation
}

// Error implementa error con todas las violaciones concatenadas.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validación fallida"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, "; ")
}

// Add agrega una violación al agregado.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// AddViolation agrega una violación ya construida; nil-safe para componer guards.
func (e *ValidationError) AddViolation(v *FieldViolation) {
	if v != nil {
		e.Violations = append(e.Violations, *v)
	}
}

// HasViolations indica si el agregado contiene al menos una violación.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// ConflictError violación de unicidad atribuida a un campo. Es clase
// conflicto, no bad-request: la capa de persistencia la detecta atómicamente
// (constraint único) y aquí solo se le da forma.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + ": ya está en uso"
}

// Unwrap permite errors.Is(err, ErrDuplicate).
func (e *ConflictError) Unwrap() error {
	return ErrDuplicate
}

// AsValidation extrae un *ValidationError de la cadena de errores, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

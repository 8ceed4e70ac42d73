// Package validate centraliza la validación de DTOs sobre go-playground
// validator, traduciendo los fallos a domain.ValidationError (una violación
// por campo, mensajes fijos).
package validate

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/agenda-api/internal/domain"
)

// PasswordMessage mensaje fijo del requisito de complejidad de contraseña.
const PasswordMessage = "Password must be at least 8 characters long and contain at least one digit, one uppercase letter, one lowercase letter, and one special character"

const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Reportar violaciones con el nombre JSON del campo, no el de Go.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = val.RegisterValidation("password", passwordRule)
	return val
}

// passwordRule al menos 8 caracteres, con mayúscula, minúscula, dígito y
// carácter especial.
func passwordRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Struct valida un DTO; devuelve nil o un *domain.ValidationError agregado.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verr := &domain.ValidationError{}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		verr.Add("", "This value is not valid.")
		return verr
	}
	for _, fe := range ferrs {
		verr.Add(fieldPath(fe), messageFor(fe))
	}
	return verr
}

// fieldPath recorta el nombre del struct raíz del namespace del campo
// (CreateUserRequest.company.code -> company.code).
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This value should not be blank."
	case "email":
		return "This value is not a valid email address."
	case "password":
		return PasswordMessage
	case "min":
		return "This value is too short."
	case "max":
		return "This value is too long."
	case "gt":
		return "This value should be positive."
	case "uuid4":
		return "This value is not a valid identifier."
	default:
		return "This value is not valid."
	}
}

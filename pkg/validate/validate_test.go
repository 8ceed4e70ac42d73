package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/pkg/validate"
)

func violations(t *testing.T, err error) map[string]string {
	t.Helper()
	verr, ok := domain.AsValidation(err)
	require.True(t, ok, "se esperaba *domain.ValidationError, se obtuvo: %v", err)
	m := make(map[string]string, len(verr.Violations))
	for _, v := range verr.Violations {
		m[v.Field] = v.Message
	}
	return m
}

func validCreateUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "nora.campos",
		Email:    "nora@test.local",
		Password: "Str0ng!Pass",
		Fname:    "Nora",
		Lname:    "Campos",
	}
}

func TestStruct_DTOValido(t *testing.T) {
	assert.NoError(t, validate.Struct(validCreateUser()))
}

// Las violaciones se reportan con el nombre JSON del campo y mensajes fijos.
func TestStruct_CamposRequeridos(t *testing.T) {
	in := dto.CreateUserRequest{}
	m := violations(t, validate.Struct(in))

	assert.Equal(t, "This value should not be blank.", m["username"])
	assert.Equal(t, "This value should not be blank.", m["email"])
	assert.Equal(t, "This value should not be blank.", m["password"])
	assert.Equal(t, "This value should not be blank.", m["fname"])
	assert.Equal(t, "This value should not be blank.", m["lname"])
}

func TestStruct_EmailInvalido(t *testing.T) {
	in := validCreateUser()
	in.Email = "no-es-un-email"
	m := violations(t, validate.Struct(in))
	assert.Equal(t, "This value is not a valid email address.", m["email"])
}

// La regla de complejidad exige 8+ caracteres con mayúscula, minúscula, dígito
// y carácter especial.
func TestStruct_ReglaPassword(t *testing.T) {
	rejected := []string{
		"corta1!",      // menos de 8
		"sinmayuscula1!", // sin mayúscula
		"SINMINUSCULA1!", // sin minúscula
		"SinDigitos!!",   // sin dígito
		"SinEspecial11",  // sin especial
	}
	for _, p := range rejected {
		in := validCreateUser()
		in.Password = p
		m := violations(t, validate.Struct(in))
		assert.Equal(t, validate.PasswordMessage, m["password"], "password %q debe rechazarse", p)
	}

	accepted := []string{"Str0ng!Pass", "Abcdef1#", "P@ssw0rdLargo"}
	for _, p := range accepted {
		in := validCreateUser()
		in.Password = p
		assert.NoError(t, validate.Struct(in), "password %q debe aceptarse", p)
	}
}

// El namespace anidado conserva la ruta del campo con nombres JSON.
func TestStruct_CampoAnidado(t *testing.T) {
	in := validCreateUser()
	in.Company = &dto.CompanyRefRequest{Code: "no-es-uuid"}
	m := violations(t, validate.Struct(in))
	assert.Equal(t, "This value is not a valid identifier.", m["company.code"])
}

func TestStruct_DuracionPositiva(t *testing.T) {
	in := dto.CreateAppointmentTypeRequest{Name: "Consulta", Duration: -5}
	m := violations(t, validate.Struct(in))
	assert.Equal(t, "This value should be positive.", m["duration"])
}

package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/guard"
)

type typesEnv struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
	types     *fakeAppointmentTypeRepo
	uc        *usecase.AppointmentTypeUseCase
}

func newTypesEnv() *typesEnv {
	companies := newFakeCompanyRepo()
	types := newFakeAppointmentTypeRepo()
	return &typesEnv{
		companies: companies,
		users:     newFakeUserRepo(),
		types:     types,
		uc:        usecase.NewAppointmentTypeUseCase(types, companies),
	}
}

func (e *typesEnv) seedCompany(t *testing.T, name string) *entity.Company {
	t.Helper()
	c := &entity.Company{Code: uuid.NewString(), Name: name}
	require.NoError(t, e.companies.Create(c))
	return c
}

func (e *typesEnv) seedUser(t *testing.T, username, tier string, company *entity.Company) *entity.User {
	t.Helper()
	u := &entity.User{
		Code:         uuid.NewString(),
		Username:     username,
		PasswordHash: "x",
		Roles:        []string{tier},
		Fname:        "Nombre",
		Lname:        "Apellido",
		Email:        username + "@test.local",
		Company:      company,
	}
	require.NoError(t, e.users.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointmentTypeCreate_Anonimo_Unauthorized(t *testing.T) {
	env := newTypesEnv()
	_, err := env.uc.Create(nil, dto.CreateAppointmentTypeRequest{Name: "Consulta", Duration: 30})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAppointmentTypeCreate_UsuarioBasico_Forbidden(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	basic := env.seedUser(t, "andina_user", entity.RoleUser, company)

	_, err := env.uc.Create(basic, dto.CreateAppointmentTypeRequest{Name: "Consulta", Duration: 30})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Company admin sin empresa en el payload: el tipo de cita queda en su propia
// empresa.
func TestAppointmentTypeCreate_CompanyAdminHeredaEmpresa(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)

	out, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Consulta general", Duration: 30})
	require.NoError(t, err)
	assert.Equal(t, company.Code, out.Company.Code)
	assert.Equal(t, 30, out.Duration)
}

// Company admin con la empresa de otro tenant: denegado por el motor de
// acceso, antes de llegar a los guards.
func TestAppointmentTypeCreate_CompanyAdminEnEmpresaAjena_Forbidden(t *testing.T) {
	env := newTypesEnv()
	mine := env.seedCompany(t, "Clínica Andina")
	other := env.seedCompany(t, "Centro Mirador")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, mine)

	_, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{
		Name:     "Consulta general",
		Duration: 30,
		Company:  &dto.CompanyRefRequest{Code: other.Code},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Admin global puede crear en cualquier empresa.
func TestAppointmentTypeCreate_AdminEnCualquierEmpresa(t *testing.T) {
	env := newTypesEnv()
	system := env.seedCompany(t, entity.SystemCompanyName)
	other := env.seedCompany(t, "Centro Mirador")
	admin := env.seedUser(t, "admin_global", entity.RoleAdmin, system)

	out, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{
		Name:     "Sesión inicial",
		Duration: 60,
		Company:  &dto.CompanyRefRequest{Code: other.Code},
	})
	require.NoError(t, err)
	assert.Equal(t, other.Code, out.Company.Code)
}

func TestAppointmentTypeCreate_EmpresaDesconocida_Violacion(t *testing.T) {
	env := newTypesEnv()
	system := env.seedCompany(t, entity.SystemCompanyName)
	admin := env.seedUser(t, "admin_global", entity.RoleAdmin, system)

	_, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{
		Name:     "Consulta",
		Duration: 30,
		Company:  &dto.CompanyRefRequest{Code: uuid.NewString()},
	})
	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, guard.MsgCompanyUnknown, verr.Violations[0].Message)
}

func TestAppointmentTypeCreate_DuracionInvalida_Violacion(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)

	_, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Consulta", Duration: 0})
	verr, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "duration", verr.Violations[0].Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointmentTypeGet_AnonimoLee(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)

	created, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Consulta general", Duration: 30})
	require.NoError(t, err)

	out, err := env.uc.GetByID(nil, created.ID)
	require.NoError(t, err, "la lectura de un tipo de cita es pública")
	assert.Equal(t, "Consulta general", out.Name)

	_, err = env.uc.GetByID(nil, created.ID+99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentTypeListByCompany_AnonimoLee(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	other := env.seedCompany(t, "Centro Mirador")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)

	_, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Consulta general", Duration: 30})
	require.NoError(t, err)
	_, err = env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Control", Duration: 15})
	require.NoError(t, err)

	out, err := env.uc.ListByCompany(company.Code, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	empty, err := env.uc.ListByCompany(other.Code, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	_, err = env.uc.ListByCompany(uuid.NewString(), dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentTypeList_SoloAdmins(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	companyAdmin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)

	_, err := env.uc.List(companyAdmin, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.uc.List(nil, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointmentTypeUpdate_ReglasPorEmpresa(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	other := env.seedCompany(t, "Centro Mirador")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)
	outsider := env.seedUser(t, "mirador_admin", entity.RoleCompanyAdmin, other)
	basic := env.seedUser(t, "andina_user", entity.RoleUser, company)

	created, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Consulta general", Duration: 30})
	require.NoError(t, err)

	duration := 45
	out, err := env.uc.Update(admin, created.ID, dto.UpdateAppointmentTypeRequest{Duration: &duration})
	require.NoError(t, err)
	assert.Equal(t, 45, out.Duration)

	_, err = env.uc.Update(outsider, created.ID, dto.UpdateAppointmentTypeRequest{Duration: &duration})
	assert.ErrorIs(t, err, domain.ErrForbidden, "company admin de otra empresa no edita")

	_, err = env.uc.Update(basic, created.ID, dto.UpdateAppointmentTypeRequest{Duration: &duration})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un usuario básico no edita")

	_, err = env.uc.Update(admin, created.ID+99, dto.UpdateAppointmentTypeRequest{Duration: &duration})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentTypeDelete_Repeticion_NotFound(t *testing.T) {
	env := newTypesEnv()
	company := env.seedCompany(t, "Clínica Andina")
	admin := env.seedUser(t, "andina_admin", entity.RoleCompanyAdmin, company)

	created, err := env.uc.Create(admin, dto.CreateAppointmentTypeRequest{Name: "Control", Duration: 15})
	require.NoError(t, err)

	require.NoError(t, env.uc.Delete(admin, created.ID))
	assert.ErrorIs(t, env.uc.Delete(admin, created.ID), domain.ErrNotFound)
}

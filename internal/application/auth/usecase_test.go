package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/agenda-api/internal/application/auth"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/agenda-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "Str0ng!Pass"
)

// fakeUserRepo solo implementa lo que Login necesita; el resto no se invoca.
type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}
func (r *fakeUserRepo) GetByCode(string) (*entity.User, error)            { return nil, nil }
func (r *fakeUserRepo) Create(*entity.User) error                         { return nil }
func (r *fakeUserRepo) Update(*entity.User) error                         { return nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error)             { return nil, nil }
func (r *fakeUserRepo) ListByCompany(int64, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(int64) error { return nil }

func newLoginEnv(t *testing.T) (*auth.AuthUseCase, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           1,
		Code:         "00000000-0000-4000-8000-000000000001",
		Username:     "andina_admin",
		PasswordHash: string(hash),
		Roles:        []string{entity.RoleCompanyAdmin},
		Fname:        "Carla",
		Lname:        "Rojas",
		Email:        "admin@andina.test",
		Company:      &entity.Company{ID: 1, Code: "c-andina", Name: "Clínica Andina"},
	}
	repo := &fakeUserRepo{byUsername: map[string]*entity.User{user.Username: user}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "agenda-pro-test"})
	return uc, user
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, user := newLoginEnv(t)

	out, err := uc.Login(dto.LoginRequest{Username: "andina_admin", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El cuerpo lleva el usuario sin hash ni ID interno, con sus flags de rol.
	assert.Equal(t, user.Code, out.User.Code)
	assert.True(t, out.User.CompanyAdmin)
	assert.False(t, out.User.Admin)
	require.NotNil(t, out.User.Company)
	assert.Equal(t, "c-andina", out.User.Company.Code)

	// El token lleva codes y el tier efectivo, nunca IDs internos.
	userCode, companyCode, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Code, userCode)
	assert.Equal(t, "c-andina", companyCode)
	assert.Equal(t, entity.RoleCompanyAdmin, role)
}

// Usuario inexistente y contraseña incorrecta deben ser indistinguibles.
func TestLogin_CredencialesInvalidas_Indistinguibles(t *testing.T) {
	uc, _ := newLoginEnv(t)

	_, errUnknown := uc.Login(dto.LoginRequest{Username: "no_existe", Password: testPassword})
	_, errWrongPass := uc.Login(dto.LoginRequest{Username: "andina_admin", Password: "Otra!Clave9"})

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPass, "misma clase de error para ambos fallos")
}

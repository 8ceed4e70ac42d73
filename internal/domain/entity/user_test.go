package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// Los predicados de tier son monotónicos: un tier superior implica todos los
// inferiores.
func TestUser_PredicadosMonotonicos(t *testing.T) {
	cases := []struct {
		tier         string
		companyAdmin bool
		admin        bool
		superAdmin   bool
	}{
		{entity.RoleUser, false, false, false},
		{entity.RoleCompanyAdmin, true, false, false},
		{entity.RoleAdmin, true, true, false},
		{entity.RoleSuperAdmin, true, true, true},
	}
	for _, tc := range cases {
		u := &entity.User{Roles: []string{tc.tier}}
		assert.Equal(t, tc.companyAdmin, u.IsCompanyAdmin(), "IsCompanyAdmin con %s", tc.tier)
		assert.Equal(t, tc.admin, u.IsAdmin(), "IsAdmin con %s", tc.tier)
		assert.Equal(t, tc.superAdmin, u.IsSuperAdmin(), "IsSuperAdmin con %s", tc.tier)
	}
}

// Make* reemplaza el set completo: la democión directa es válida y el set
// siempre colapsa a un singleton.
func TestUser_MakeReemplazaElSet(t *testing.T) {
	u := &entity.User{}

	u.MakeSuperAdmin()
	assert.Equal(t, []string{entity.RoleSuperAdmin}, u.Roles)

	u.MakeBasicUser()
	assert.Equal(t, []string{entity.RoleUser}, u.Roles, "la democión reemplaza, no acumula")
	assert.False(t, u.IsCompanyAdmin())

	u.MakeCompanyAdmin()
	u.MakeCompanyAdmin()
	assert.Equal(t, []string{entity.RoleCompanyAdmin}, u.Roles, "Make* es idempotente")
}

func TestUser_HighestRole(t *testing.T) {
	u := &entity.User{}
	assert.Equal(t, entity.RoleUser, u.HighestRole(), "sin roles, el tier efectivo es el básico")

	u.MakeAdmin()
	assert.Equal(t, entity.RoleAdmin, u.HighestRole())

	// Un set no colapsado (estado legacy) sigue resolviendo al más alto.
	u.Roles = []string{entity.RoleUser, entity.RoleSuperAdmin}
	assert.Equal(t, entity.RoleSuperAdmin, u.HighestRole())
}

func TestUser_FullName(t *testing.T) {
	u := &entity.User{Fname: "Nora", Lname: "Campos"}
	assert.Equal(t, "Nora Campos", u.FullName())
}

// IsNew distingue entidades inline (sin identidad persistida) de las ya
// guardadas.
func TestCompany_IsNew(t *testing.T) {
	assert.True(t, (&entity.Company{}).IsNew())
	assert.False(t, (&entity.Company{ID: 7}).IsNew())
}

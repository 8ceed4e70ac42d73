package access

import "github.com/jhoicas/agenda-api/internal/domain/entity"

// RoleFlags flags de elevación aceptados en payloads de escritura de usuarios.
// Punteros nil = campo ausente en el payload.
type RoleFlags struct {
	BasicUser    *bool
	CompanyAdmin *bool
	Admin        *bool
	SuperAdmin   *bool
}

// roleFlagGrants allow-list explícito: qué capacidad del actor habilita cada
// flag del payload. Un flag sin la capacidad correspondiente se ignora en
// silencio; es un filtro de capacidades, no una validación dura.
//
//	basicUser, companyAdmin -> IsCompanyAdmin
//	admin                   -> IsAdmin
//	superAdmin              -> IsSuperAdmin
func roleFlagGrants(actor *entity.User) (companyAdmin, admin, superAdmin bool) {
	if actor == nil {
		return false, false, false
	}
	return actor.IsCompanyAdmin(), actor.IsAdmin(), actor.IsSuperAdmin()
}

// ApplyRoleFlags aplica al usuario destino solo los flags que la capacidad del
// actor permite otorgar. Se aplican de menor a mayor privilegio, de modo que
// el flag concedido más alto determina el tier final.
func ApplyRoleFlags(actor, target *entity.User, flags RoleFlags) {
	grantCompanyAdmin, grantAdmin, grantSuperAdmin := roleFlagGrants(actor)

	if grantCompanyAdmin {
		if flags.BasicUser != nil && *flags.BasicUser {
			target.MakeBasicUser()
		}
		if flags.CompanyAdmin != nil && *flags.CompanyAdmin {
			target.MakeCompanyAdmin()
		}
	}
	if grantAdmin {
		if flags.Admin != nil && *flags.Admin {
			target.MakeAdmin()
		}
	}
	if grantSuperAdmin {
		if flags.SuperAdmin != nil && *flags.SuperAdmin {
			target.MakeSuperAdmin()
		}
	}
}

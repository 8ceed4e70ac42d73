package entity

// Tiers de rol, ordenados estrictamente por privilegio (menor a mayor).
const (
	RoleUser         = "ROLE_USER"
	RoleCompanyAdmin = "ROLE_COMPANY_ADMIN"
	RoleAdmin        = "ROLE_ADMIN"
	RoleSuperAdmin   = "ROLE_SUPER_ADMIN"
)

// User representa un usuario del sistema (pertenece a una Company).
//
// Roles se modela como set por compatibilidad futura, pero siempre colapsa a
// un singleton con el tier más alto asignado: las operaciones Make* reemplazan
// el set completo.
type User struct {
	ID           int64
	Code         string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Roles        []string
	Fname        string
	Lname        string
	Email        string
	Company      *Company // requerido, no-nil al persistir
}

// FullName nombre legal completo.
func (u *User) FullName() string {
	return u.Fname + " " + u.Lname
}

// hasAnyRole intersección del set de roles con los tiers dados.
func (u *User) hasAnyRole(tiers ...string) bool {
	for _, r := range u.Roles {
		for _, t := range tiers {
			if r == t {
				return true
			}
		}
	}
	return false
}

// IsCompanyAdmin tier >= ROLE_COMPANY_ADMIN.
func (u *User) IsCompanyAdmin() bool {
	return u.hasAnyRole(RoleCompanyAdmin, RoleAdmin, RoleSuperAdmin)
}

// IsAdmin tier >= ROLE_ADMIN. IsAdmin implica IsCompanyAdmin.
func (u *User) IsAdmin() bool {
	return u.hasAnyRole(RoleAdmin, RoleSuperAdmin)
}

// IsSuperAdmin tier == ROLE_SUPER_ADMIN. IsSuperAdmin implica IsAdmin.
func (u *User) IsSuperAdmin() bool {
	return u.hasAnyRole(RoleSuperAdmin)
}

// Las operaciones Make* son idempotentes y reemplazan el set de roles por el
// singleton del tier destino. La democión es válida: cualquier tier es
// alcanzable desde cualquier tier por asignación directa.

// MakeBasicUser asigna el tier ROLE_USER.
func (u *User) MakeBasicUser() {
	u.Roles = []string{RoleUser}
}

// MakeCompanyAdmin asigna el tier ROLE_COMPANY_ADMIN.
func (u *User) MakeCompanyAdmin() {
	u.Roles = []string{RoleCompanyAdmin}
}

// MakeAdmin asigna el tier ROLE_ADMIN.
func (u *User) MakeAdmin() {
	u.Roles = []string{RoleAdmin}
}

// MakeSuperAdmin asigna el tier ROLE_SUPER_ADMIN.
func (u *User) MakeSuperAdmin() {
	u.Roles = []string{RoleSuperAdmin}
}

// HighestRole devuelve el tier efectivo del usuario (para claims JWT).
func (u *User) HighestRole() string {
	switch {
	case u.IsSuperAdmin():
		return RoleSuperAdmin
	case u.IsAdmin():
		return RoleAdmin
	case u.IsCompanyAdmin():
		return RoleCompanyAdmin
	default:
		return RoleUser
	}
}

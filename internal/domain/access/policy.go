// Package access implementa el motor de decisiones de autorización: una
// función pura por (recurso x operación), registrada en un mapa por nombre de
// operación. Denegar es el default: solo un match explícito concede acceso.
//
// El actor se pasa siempre como parámetro explícito (nil = anónimo); no hay
// contexto de seguridad ambiental.
package access

import "github.com/jhoicas/agenda-api/internal/domain/entity"

// Operation clase de operación protegida.
type Operation string

const (
	UserList   Operation = "user:list"
	UserCreate Operation = "user:create"
	UserGet    Operation = "user:get"
	UserUpdate Operation = "user:update"
	UserDelete Operation = "user:delete"

	AppointmentTypeList   Operation = "appointment_type:list"
	AppointmentTypeCreate Operation = "appointment_type:create"
	AppointmentTypeGet    Operation = "appointment_type:get"
	AppointmentTypeUpdate Operation = "appointment_type:update"
	AppointmentTypeDelete Operation = "appointment_type:delete"

	CompanyList      Operation = "company:list"
	CompanyCreate    Operation = "company:create"
	CompanyGet       Operation = "company:get"
	CompanyUpdate    Operation = "company:update"
	CompanyDelete    Operation = "company:delete"
	CompanyUsersList Operation = "company:users:list"
)

// Decision función pura permitir/denegar. subject es el recurso objetivo:
// *entity.User, *entity.AppointmentType, *entity.Company o el code (string)
// de la empresa en operaciones de subrecurso. Puede ser nil en operaciones de
// colección.
type Decision func(actor *entity.User, subject any) bool

// policies registro de decisiones por operación. Una operación no registrada
// nunca se permite.
var policies = map[Operation]Decision{
	UserList:   actorIsAdmin,
	UserCreate: anonymousEligible,
	UserGet:    canGetUser,
	UserUpdate: canUpdateUser,
	UserDelete: canDeleteUser,

	AppointmentTypeList:   actorIsAdmin,
	AppointmentTypeCreate: canCreateAppointmentType,
	AppointmentTypeGet:    anonymousEligible,
	AppointmentTypeUpdate: canWriteAppointmentType,
	AppointmentTypeDelete: canWriteAppointmentType,

	CompanyList:      actorIsAdmin,
	CompanyCreate:    actorIsAdmin,
	CompanyGet:       canSeeCompany,
	CompanyUpdate:    actorIsAdmin,
	CompanyDelete:    actorIsAdmin,
	CompanyUsersList: canSeeCompany,
}

// Decide evalúa la decisión registrada para la operación; deny por defecto.
func Decide(op Operation, actor *entity.User, subject any) bool {
	decision, ok := policies[op]
	if !ok {
		return false
	}
	return decision(actor, subject)
}

// sameCompany compara por Code (identificador externo), nunca por ID interno.
func sameCompany(actor *entity.User, company *entity.Company) bool {
	return actor.Company != nil && company != nil && actor.Company.Code == company.Code
}

func actorIsAdmin(actor *entity.User, _ any) bool {
	return actor != nil && actor.IsAdmin()
}

// anonymousEligible únicas operaciones alcanzables sin actor autenticado:
// registro de usuario (colección) y lectura de un tipo de cita (ítem).
// Las restricciones de negocio se aplican aparte, en los guards.
func anonymousEligible(_ *entity.User, _ any) bool {
	return true
}

func canGetUser(actor *entity.User, subject any) bool {
	target, ok := subject.(*entity.User)
	if actor == nil || !ok || target == nil {
		return false
	}
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsCompanyAdmin() && sameCompany(actor, target.Company):
		return true
	case actor.Code == target.Code:
		return true
	}
	return false
}

// canUpdateUser regla escalonada de edición, evaluada en orden (gana el primer
// match): super admin incondicional; admin sobre no-super-admin; company admin
// sobre no-admin de su misma empresa; el propio usuario sobre sí mismo.
func canUpdateUser(actor *entity.User, subject any) bool {
	target, ok := subject.(*entity.User)
	if actor == nil || !ok || target == nil {
		return false
	}
	switch {
	case actor.IsSuperAdmin():
		return true
	case actor.IsAdmin() && !target.IsSuperAdmin():
		return true
	case actor.IsCompanyAdmin() &&
		sameCompany(actor, target.Company) &&
		!target.IsAdmin() && !target.IsSuperAdmin():
		return true
	case actor.Code == target.Code:
		return true
	}
	return false
}

// canDeleteUser misma regla escalonada que la edición pero sin la excepción de
// self: ningún usuario puede borrar su propia cuenta por esta vía.
func canDeleteUser(actor *entity.User, subject any) bool {
	target, ok := subject.(*entity.User)
	if actor == nil || !ok || target == nil {
		return false
	}
	if actor.Code == target.Code {
		return false
	}
	switch {
	case actor.IsSuperAdmin():
		return true
	case actor.IsAdmin() && !target.IsSuperAdmin():
		return true
	case actor.IsCompanyAdmin() &&
		sameCompany(actor, target.Company) &&
		!target.IsAdmin() && !target.IsSuperAdmin():
		return true
	}
	return false
}

// canCreateAppointmentType admin sobre cualquier empresa; company admin solo
// si la empresa viene sin fijar (se asignará la propia) o es la propia.
func canCreateAppointmentType(actor *entity.User, subject any) bool {
	at, ok := subject.(*entity.AppointmentType)
	if actor == nil || !ok || at == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	return actor.IsCompanyAdmin() && (at.Company == nil || sameCompany(actor, at.Company))
}

func canWriteAppointmentType(actor *entity.User, subject any) bool {
	at, ok := subject.(*entity.AppointmentType)
	if actor == nil || !ok || at == nil {
		return false
	}
	return actor.IsAdmin() || (actor.IsCompanyAdmin() && sameCompany(actor, at.Company))
}

// canSeeCompany subject es el code de la empresa o la empresa misma: admin o
// miembro de esa empresa.
func canSeeCompany(actor *entity.User, subject any) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	switch s := subject.(type) {
	case string:
		return actor.Company != nil && actor.Company.Code == s
	case *entity.Company:
		return sameCompany(actor, s)
	}
	return false
}

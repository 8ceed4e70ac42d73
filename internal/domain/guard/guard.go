// Package guard implementa los invariantes de entidad evaluados en tiempo de
// escritura, como funciones puras que reciben el actor explícitamente. El
// orquestador del write-path los invoca después de la asignación de tenant y
// antes de persistir; las violaciones se agregan por campo en un
// domain.ValidationError.
package guard

import (
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// Mensajes fijos de violación, visibles al cliente.
const (
	MsgOwnCompany          = "The company must be your own company."
	MsgNewCompanyAnonymous = "A new user cannot be attached to an existing company anonymously."
	MsgCompanyRequired     = "A company is required."
	MsgCompanyUnknown      = "The referenced company does not exist."
)

// OwnCompany restringe el campo company en escrituras de User y
// AppointmentType: un actor no-admin solo puede escribir su propia empresa.
// Sin efecto con valor ausente, actor anónimo (lo cubren NewCompanyAnonymous y
// el motor de acceso) o actor con tier >= ROLE_ADMIN.
func OwnCompany(actor *entity.User, value *entity.Company) *domain.FieldViolation {
	if value == nil || actor == nil {
		return nil
	}
	if actor.IsAdmin() {
		return nil
	}
	if actor.Company == nil || actor.Company.Code != value.Code {
		return &domain.FieldViolation{Field: "company", Message: MsgOwnCompany}
	}
	return nil
}

// NewCompanyAnonymous aplica solo al campo company en escrituras de User: un
// actor anónimo puede crear una empresa nueva inline, pero nunca adjuntarse a
// una ya persistida. Evita la enumeración y el secuestro de tenants por
// actores sin autenticar. Los actores autenticados no se ven afectados.
func NewCompanyAnonymous(actor *entity.User, value *entity.Company) *domain.FieldViolation {
	if value == nil || actor != nil {
		return nil
	}
	if !value.IsNew() {
		return &domain.FieldViolation{Field: "company", Message: MsgNewCompanyAnonymous}
	}
	return nil
}

// CompanyRequired el campo company no puede ser nulo al persistir.
func CompanyRequired(value *entity.Company) *domain.FieldViolation {
	if value == nil {
		return &domain.FieldViolation{Field: "company", Message: MsgCompanyRequired}
	}
	return nil
}

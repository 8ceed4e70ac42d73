package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/access"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/guard"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// RegistrationTxRunner ejecuta el alta empresa+usuario dentro de una unidad
// atómica: o se persisten ambos o ninguno.
type RegistrationTxRunner interface {
	RunRegistration(fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error
}

// UserUseCase orquesta el write-path de usuarios: decisión de acceso,
// asignación de tenant, guards de invariantes, filtro de capacidades y
// persistencia, en ese orden.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	reg       RegistrationTxRunner
}

// NewUserUseCase construye el caso de uso con sus puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository, reg RegistrationTxRunner) *UserUseCase {
	return &UserUseCase{users: users, companies: companies, reg: reg}
}

// Create crea un usuario. Es la única escritura alcanzable por un actor
// anónimo (registro self-service); un anónimo solo puede crear una empresa
// nueva inline, nunca adjuntarse a una existente.
func (uc *UserUseCase) Create(actor *entity.User, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !access.Decide(access.UserCreate, actor, nil) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	company, err := uc.resolveCompany(in.Company, verr)
	if err != nil {
		return nil, err
	}

	// Asignación de tenant: empresa omitida -> la del actor autenticado.
	if company == nil && actor != nil {
		company = actor.Company
	}

	verr.AddViolation(guard.CompanyRequired(company))
	verr.AddViolation(guard.OwnCompany(actor, company))
	verr.AddViolation(guard.NewCompanyAnonymous(actor, company))
	if verr.HasViolations() {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Code:         uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Fname:        in.Fname,
		Lname:        in.Lname,
		Email:        in.Email,
		Company:      company,
	}

	// Rol: básico por defecto, flags del payload filtrados por capacidad y,
	// por último, la auto-promoción del primer usuario de una empresa nueva.
	user.MakeBasicUser()
	access.ApplyRoleFlags(actor, user, roleFlags(in.RoleFlagsRequest))
	if company.IsNew() {
		user.MakeCompanyAdmin()
	}

	if company.IsNew() {
		err = uc.reg.RunRegistration(func(companies repository.CompanyRepository, users repository.UserRepository) error {
			if err := companies.Create(company); err != nil {
				return err
			}
			return users.Create(user)
		})
	} else {
		err = uc.users.Create(user)
	}
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// resolveCompany materializa la referencia de empresa del payload: code ->
// lookup de una existente; name inline -> entidad nueva sin identidad
// persistida (ID 0).
func (uc *UserUseCase) resolveCompany(ref *dto.CompanyRefRequest, verr *domain.ValidationError) (*entity.Company, error) {
	if ref == nil {
		return nil, nil
	}
	if ref.Code != "" {
		company, err := uc.companies.GetByCode(ref.Code)
		if err != nil {
			return nil, err
		}
		if company == nil {
			verr.Add("company", guard.MsgCompanyUnknown)
			return nil, nil
		}
		return company, nil
	}
	if ref.Name != "" {
		return &entity.Company{Code: uuid.NewString(), Name: ref.Name}, nil
	}
	return nil, nil
}

// GetByCode obtiene un usuario. Orden de chequeos: authn -> existencia ->
// authz (un recurso inexistente es 404 para cualquier actor autenticado).
func (uc *UserUseCase) GetByCode(actor *entity.User, code string) (*dto.UserResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	target, err := uc.users.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.UserGet, actor, target) {
		return nil, domain.ErrForbidden
	}
	return entityToUserResponse(target), nil
}

// List lista todos los usuarios (solo admins).
func (uc *UserUseCase) List(actor *entity.User, page dto.PageRequest) (*dto.UserListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !access.Decide(access.UserList, actor, nil) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.users.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return userList(list, page), nil
}

// ListByCompany lista los usuarios de una empresa (subrecurso): admin o
// miembros de esa misma empresa.
func (uc *UserUseCase) ListByCompany(actor *entity.User, companyCode string, page dto.PageRequest) (*dto.UserListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	company, err := uc.companies.GetByCode(companyCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.CompanyUsersList, actor, companyCode) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.users.ListByCompany(company.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return userList(list, page), nil
}

// Update edita el perfil bajo la regla escalonada de edición. Los flags de
// elevación del payload pasan por el filtro de capacidades: los no otorgables
// por el tier del actor se ignoran sin error.
func (uc *UserUseCase) Update(actor *entity.User, code string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	target, err := uc.users.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.UserUpdate, actor, target) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	if in.Fname != nil {
		target.Fname = *in.Fname
	}
	if in.Lname != nil {
		target.Lname = *in.Lname
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = string(hash)
	}
	access.ApplyRoleFlags(actor, target, roleFlags(in.RoleFlagsRequest))

	if err := uc.users.Update(target); err != nil {
		return nil, err
	}
	return entityToUserResponse(target), nil
}

// Delete elimina un usuario bajo la regla escalonada sin excepción de self:
// nadie borra su propia cuenta por esta vía.
func (uc *UserUseCase) Delete(actor *entity.User, code string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	target, err := uc.users.GetByCode(code)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if !access.Decide(access.UserDelete, actor, target) {
		return domain.ErrForbidden
	}
	return uc.users.Delete(target.ID)
}

func roleFlags(in dto.RoleFlagsRequest) access.RoleFlags {
	return access.RoleFlags{
		BasicUser:    in.BasicUser,
		CompanyAdmin: in.CompanyAdmin,
		Admin:        in.Admin,
		SuperAdmin:   in.SuperAdmin,
	}
}

func userList(list []*entity.User, page dto.PageRequest) *dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Code:         u.Code,
		Username:     u.Username,
		Email:        u.Email,
		Fname:        u.Fname,
		Lname:        u.Lname,
		FullName:     u.FullName(),
		CompanyAdmin: u.IsCompanyAdmin(),
		Admin:        u.IsAdmin(),
		SuperAdmin:   u.IsSuperAdmin(),
		Company:      entityToCompanyResponse(u.Company),
	}
}

package usecase

import (
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/access"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/guard"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/validate"
)

// AppointmentTypeUseCase orquesta el write-path de tipos de cita con el mismo
// pipeline que los usuarios (decisión, asignación de tenant, guards,
// persistencia) pero sin auto-promoción: los tipos de cita no llevan rol.
type AppointmentTypeUseCase struct {
	repo      repository.AppointmentTypeRepository
	companies repository.CompanyRepository
}

// NewAppointmentTypeUseCase construye el caso de uso con sus puertos.
func NewAppointmentTypeUseCase(repo repository.AppointmentTypeRepository, companies repository.CompanyRepository) *AppointmentTypeUseCase {
	return &AppointmentTypeUseCase{repo: repo, companies: companies}
}

// Create crea un tipo de cita. La decisión de acceso se evalúa sobre el
// objeto con la empresa tal como vino en el payload (puede ser nil); la
// asignación de tenant ocurre después, igual que en el original.
func (uc *AppointmentTypeUseCase) Create(actor *entity.User, in dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	var company *entity.Company
	if in.Company != nil && in.Company.Code != "" {
		c, err := uc.companies.GetByCode(in.Company.Code)
		if err != nil {
			return nil, err
		}
		if c == nil {
			verr.Add("company", guard.MsgCompanyUnknown)
			return nil, verr
		}
		company = c
	}

	at := &entity.AppointmentType{Name: in.Name, Duration: in.Duration, Company: company}
	if !access.Decide(access.AppointmentTypeCreate, actor, at) {
		return nil, domain.ErrForbidden
	}

	// Asignación de tenant: empresa omitida -> la del actor.
	if at.Company == nil {
		at.Company = actor.Company
	}

	verr.AddViolation(guard.CompanyRequired(at.Company))
	verr.AddViolation(guard.OwnCompany(actor, at.Company))
	if verr.HasViolations() {
		return nil, verr
	}

	if err := uc.repo.Create(at); err != nil {
		return nil, err
	}
	return entityToAppointmentTypeResponse(at), nil
}

// GetByID obtiene un tipo de cita. Elegible para anónimos.
func (uc *AppointmentTypeUseCase) GetByID(actor *entity.User, id int64) (*dto.AppointmentTypeResponse, error) {
	at, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if at == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.AppointmentTypeGet, actor, at) {
		return nil, domain.ErrForbidden
	}
	return entityToAppointmentTypeResponse(at), nil
}

// List lista todos los tipos de cita (solo admins).
func (uc *AppointmentTypeUseCase) List(actor *entity.User, page dto.PageRequest) (*dto.AppointmentTypeListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !access.Decide(access.AppointmentTypeList, actor, nil) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return appointmentTypeList(list, page), nil
}

// ListByCompany lista los tipos de cita de una empresa (subrecurso). Elegible
// para anónimos.
func (uc *AppointmentTypeUseCase) ListByCompany(companyCode string, page dto.PageRequest) (*dto.AppointmentTypeListResponse, error) {
	company, err := uc.companies.GetByCode(companyCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(company.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return appointmentTypeList(list, page), nil
}

// Update edita nombre y duración: admin o company admin de la misma empresa.
func (uc *AppointmentTypeUseCase) Update(actor *entity.User, id int64, in dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	at, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if at == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.AppointmentTypeUpdate, actor, at) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Name != nil {
		at.Name = *in.Name
	}
	if in.Duration != nil {
		at.Duration = *in.Duration
	}
	if err := uc.repo.Update(at); err != nil {
		return nil, err
	}
	return entityToAppointmentTypeResponse(at), nil
}

// Delete elimina un tipo de cita bajo la misma regla que la edición.
func (uc *AppointmentTypeUseCase) Delete(actor *entity.User, id int64) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	at, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if at == nil {
		return domain.ErrNotFound
	}
	if !access.Decide(access.AppointmentTypeDelete, actor, at) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(at.ID)
}

func appointmentTypeList(list []*entity.AppointmentType, page dto.PageRequest) *dto.AppointmentTypeListResponse {
	items := make([]dto.AppointmentTypeResponse, 0, len(list))
	for _, at := range list {
		items = append(items, *entityToAppointmentTypeResponse(at))
	}
	return &dto.AppointmentTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func entityToAppointmentTypeResponse(at *entity.AppointmentType) *dto.AppointmentTypeResponse {
	if at == nil {
		return nil
	}
	resp := &dto.AppointmentTypeResponse{ID: at.ID, Name: at.Name, Duration: at.Duration}
	if at.Company != nil {
		resp.Company = dto.CompanyResponse{Code: at.Company.Code, Name: at.Company.Name}
	}
	return resp
}

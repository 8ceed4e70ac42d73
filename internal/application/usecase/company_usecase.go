package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/access"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/validate"
)

// CompanyUseCase administración directa de empresas. El camino público de
// creación de tenants es el registro anónimo de usuarios; estas operaciones
// son para administradores (salvo la lectura de la propia empresa).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa explícitamente (solo admins). El nombre reservado
// del sistema solo se siembra en el aprovisionamiento.
func (uc *CompanyUseCase) Create(actor *entity.User, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !access.Decide(access.CompanyCreate, actor, nil) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Name == entity.SystemCompanyName {
		verr := &domain.ValidationError{}
		verr.Add("name", "This company name is reserved.")
		return nil, verr
	}
	company := &entity.Company{Code: uuid.NewString(), Name: in.Name}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByCode obtiene una empresa: admin o miembros de esa empresa.
func (uc *CompanyUseCase) GetByCode(actor *entity.User, code string) (*dto.CompanyResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	company, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.CompanyGet, actor, company) {
		return nil, domain.ErrForbidden
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación (solo admins).
func (uc *CompanyUseCase) List(actor *entity.User, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !access.Decide(access.CompanyList, actor, nil) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update renombra una empresa (solo admins). La empresa del sistema no se
// puede renombrar: su nombre es un invariante del aprovisionamiento.
func (uc *CompanyUseCase) Update(actor *entity.User, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	company, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Decide(access.CompanyUpdate, actor, company) {
		return nil, domain.ErrForbidden
	}
	if company.Name == entity.SystemCompanyName {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Name == entity.SystemCompanyName {
		verr := &domain.ValidationError{}
		verr.Add("name", "This company name is reserved.")
		return nil, verr
	}
	company.Name = in.Name
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina una empresa (solo admins). La empresa del sistema no se
// puede eliminar.
func (uc *CompanyUseCase) Delete(actor *entity.User, code string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	company, err := uc.repo.GetByCode(code)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if !access.Decide(access.CompanyDelete, actor, company) {
		return domain.ErrForbidden
	}
	if company.Name == entity.SystemCompanyName {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(company.ID)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{Code: c.Code, Name: c.Name}
}

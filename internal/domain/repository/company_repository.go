package repository

import "github.com/jhoicas/agenda-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Create asigna entity.Company.ID.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	GetByCode(code string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id int64) error
}

package repository

import "github.com/jhoicas/agenda-api/internal/domain/entity"

// AppointmentTypeRepository define el puerto de persistencia para
// AppointmentType (DIP). El par (name, company) es único; la implementación
// traduce la violación del constraint a domain.ErrDuplicate.
type AppointmentTypeRepository interface {
	Create(at *entity.AppointmentType) error
	GetByID(id int64) (*entity.AppointmentType, error)
	List(limit, offset int) ([]*entity.AppointmentType, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.AppointmentType, error)
	Update(at *entity.AppointmentType) error
	Delete(id int64) error
}

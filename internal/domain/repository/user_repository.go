package repository

import "github.com/jhoicas/agenda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven el usuario con su Company cargada (los guards y
// el motor de acceso la necesitan). Create asigna entity.User.ID.
type UserRepository interface {
	Create(user *entity.User) error
	GetByCode(code string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.User, error)
	Delete(id int64) error
}

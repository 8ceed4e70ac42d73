package usecase_test

import (
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	seq   int64
	items map[int64]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{items: map[int64]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(company *entity.Company) error {
	for _, c := range r.items {
		if c.Name == company.Name {
			return &domain.ConflictError{Field: "name"}
		}
	}
	r.seq++
	company.ID = r.seq
	cp := *company
	r.items[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	if c, ok := r.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByCode(code string) (*entity.Company, error) {
	for _, c := range r.items {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(company *entity.Company) error {
	cp := *company
	r.items[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.items {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCompanyRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	seq   int64
	items map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.items {
		if u.Username == user.Username {
			return &domain.ConflictError{Field: "username"}
		}
		if u.Email == user.Email {
			return &domain.ConflictError{Field: "email"}
		}
	}
	r.seq++
	user.ID = r.seq
	cp := *user
	r.items[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByCode(code string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Code == code {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.items[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.items {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUserRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.items {
		if u.Company != nil && u.Company.ID == companyID {
			cp := *u
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeAppointmentTypeRepo struct {
	seq   int64
	items map[int64]*entity.AppointmentType
}

func newFakeAppointmentTypeRepo() *fakeAppointmentTypeRepo {
	return &fakeAppointmentTypeRepo{items: map[int64]*entity.AppointmentType{}}
}

func (r *fakeAppointmentTypeRepo) Create(at *entity.AppointmentType) error {
	for _, t := range r.items {
		if t.Name == at.Name && t.Company != nil && at.Company != nil && t.Company.ID == at.Company.ID {
			return &domain.ConflictError{Field: "name"}
		}
	}
	r.seq++
	at.ID = r.seq
	cp := *at
	r.items[at.ID] = &cp
	return nil
}

func (r *fakeAppointmentTypeRepo) GetByID(id int64) (*entity.AppointmentType, error) {
	if t, ok := r.items[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAppointmentTypeRepo) List(limit, offset int) ([]*entity.AppointmentType, error) {
	var list []*entity.AppointmentType
	for _, t := range r.items {
		cp := *t
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeAppointmentTypeRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.AppointmentType, error) {
	var list []*entity.AppointmentType
	for _, t := range r.items {
		if t.Company != nil && t.Company.ID == companyID {
			cp := *t
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeAppointmentTypeRepo) Update(at *entity.AppointmentType) error {
	cp := *at
	r.items[at.ID] = &cp
	return nil
}

func (r *fakeAppointmentTypeRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

// fakeTxRunner pasa los mismos fakes al callback: la atomicidad no se simula,
// solo el contrato.
type fakeTxRunner struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
}

func (r *fakeTxRunner) RunRegistration(fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error {
	return fn(r.companies, r.users)
}

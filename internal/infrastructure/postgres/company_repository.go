package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa y asigna su ID.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name)
		VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, company.Code, company.Name).Scan(&company.ID)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID interno.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	return r.findOne(`SELECT id, code, name FROM companies WHERE id = $1`, id)
}

// GetByCode obtiene una empresa por su code público.
func (r *CompanyRepo) GetByCode(code string) (*entity.Company, error) {
	return r.findOne(`SELECT id, code, name FROM companies WHERE code = $1`, code)
}

// GetByName obtiene una empresa por nombre (único).
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.findOne(`SELECT id, code, name FROM companies WHERE name = $1`, name)
}

func (r *CompanyRepo) findOne(query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza el nombre de una empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `UPDATE companies SET name = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, company.ID, company.Name)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación, ordenadas por nombre.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT id, code, name FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

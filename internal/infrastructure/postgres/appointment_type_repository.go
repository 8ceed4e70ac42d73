package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.AppointmentTypeRepository = (*AppointmentTypeRepo)(nil)

// AppointmentTypeRepo implementación del puerto AppointmentTypeRepository
// sobre PostgreSQL (usable con pool o tx).
type AppointmentTypeRepo struct {
	q Querier
}

// NewAppointmentTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentTypeRepository(q Querier) *AppointmentTypeRepo {
	return &AppointmentTypeRepo{q: q}
}

// Create persiste un nuevo tipo de cita y asigna su ID.
func (r *AppointmentTypeRepo) Create(at *entity.AppointmentType) error {
	query := `
		INSERT INTO appointment_types (name, duration, company_id)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, at.Name, at.Duration, at.Company.ID).Scan(&at.ID)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert appointment type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de cita por ID, con Company cargada.
func (r *AppointmentTypeRepo) GetByID(id int64) (*entity.AppointmentType, error) {
	query := `
		SELECT at.id, at.name, at.duration, c.id, c.code, c.name
		FROM appointment_types at JOIN companies c ON c.id = at.company_id
		WHERE at.id = $1`
	var t entity.AppointmentType
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Duration, &c.ID, &c.Code, &c.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment type: %w", err)
	}
	t.Company = &c
	return &t, nil
}

// List lista tipos de cita con paginación.
func (r *AppointmentTypeRepo) List(limit, offset int) ([]*entity.AppointmentType, error) {
	query := `
		SELECT at.id, at.name, at.duration, c.id, c.code, c.name
		FROM appointment_types at JOIN companies c ON c.id = at.company_id
		ORDER BY at.name LIMIT $1 OFFSET $2`
	return r.findMany(query, limit, offset)
}

// ListByCompany lista los tipos de cita de una empresa con paginación.
func (r *AppointmentTypeRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.AppointmentType, error) {
	query := `
		SELECT at.id, at.name, at.duration, c.id, c.code, c.name
		FROM appointment_types at JOIN companies c ON c.id = at.company_id
		WHERE at.company_id = $1 ORDER BY at.name LIMIT $2 OFFSET $3`
	return r.findMany(query, companyID, limit, offset)
}

func (r *AppointmentTypeRepo) findMany(query string, args ...any) ([]*entity.AppointmentType, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointment types: %w", err)
	}
	defer rows.Close()
	var list []*entity.AppointmentType
	for rows.Next() {
		var t entity.AppointmentType
		var c entity.Company
		if err := rows.Scan(&t.ID, &t.Name, &t.Duration, &c.ID, &c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan appointment type: %w", err)
		}
		t.Company = &c
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de cita.
func (r *AppointmentTypeRepo) Update(at *entity.AppointmentType) error {
	query := `UPDATE appointment_types SET name = $2, duration = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, at.ID, at.Name, at.Duration)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("update appointment type: %w", err)
	}
	return nil
}

// Delete elimina un tipo de cita por ID.
func (r *AppointmentTypeRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointment_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment type: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `
	u.id, u.code, u.username, u.password_hash, u.roles, u.fname, u.lname, u.email,
	c.id, c.code, c.name`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL
// (usable con pool o tx). Los Get* cargan la Company con un JOIN.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna su ID.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (code, username, password_hash, roles, fname, lname, email, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.Code, user.Username, user.PasswordHash, user.Roles,
		user.Fname, user.Lname, user.Email, user.Company.ID,
	).Scan(&user.ID)
	if err != nil {
		if conflict := conflictFrom(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByCode obtiene un usuario por su code público, con Company cargada.
func (r *UserRepo) GetByCode(code string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN companies c ON c.id = u.company_id
		WHERE u.code = $1`
	return r.findOne(query, code)
}

// GetByUsername obtiene un usuario por username, con Company cargada.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN companies c ON c.id = u.company_id
		WHERE u.username = $1`
	return r.findOne(query, username)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Code, &u.Username, &u.PasswordHash, &u.Roles, &u.Fname, &u.Lname, &u.Email,
		&c.ID, &c.Code, &c.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Company = &c
	return &u, nil
}

// Update actualiza los campos mutables de un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET password_hash = $2, roles = $3, fname = $4, lname = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.PasswordHash, user.Roles, user.Fname, user.Lname,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN companies c ON c.id = u.company_id
		ORDER BY u.username LIMIT $1 OFFSET $2`
	return r.findMany(query, limit, offset)
}

// ListByCompany lista los usuarios de una empresa con paginación.
func (r *UserRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN companies c ON c.id = u.company_id
		WHERE u.company_id = $1 ORDER BY u.username LIMIT $2 OFFSET $3`
	return r.findMany(query, companyID, limit, offset)
}

func (r *UserRepo) findMany(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var c entity.Company
		if err := rows.Scan(
			&u.ID, &u.Code, &u.Username, &u.PasswordHash, &u.Roles, &u.Fname, &u.Lname, &u.Email,
			&c.ID, &c.Code, &c.Name,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Company = &c
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

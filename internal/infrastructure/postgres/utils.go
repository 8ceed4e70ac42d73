package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/agenda-api/internal/domain"
)

// constraintFields traduce el nombre del constraint único violado al campo
// de la API que lo provocó.
var constraintFields = map[string]string{
	"users_username_key":                 "username",
	"users_email_key":                    "email",
	"users_code_key":                     "code",
	"companies_name_key":                 "name",
	"companies_code_key":                 "code",
	"appointment_types_company_name_key": "name",
}

// conflictFrom devuelve un *domain.ConflictError si err es una violación de
// constraint único (23505); nil en cualquier otro caso.
func conflictFrom(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	field, ok := constraintFields[pgErr.ConstraintName]
	if !ok {
		field = "unknown"
	}
	return &domain.ConflictError{Field: field}
}

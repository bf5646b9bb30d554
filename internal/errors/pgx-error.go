package app_errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// MapPgxError übersetzt Postgres-Fehlercodes in Domänenfehler.
// Der Aufrufer kann einen eigenen messageKey für den Conflict-Fall mitgeben
// (z.B. "link.already_exists" bei der unique-Verletzung eines Issue-Links).
func MapPgxError(err error, conflictKey ...string) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			key := "conflict"
			if len(conflictKey) > 0 {
				key = conflictKey[0]
			}
			return NewAppError(409, ErrConflict, key, err)
		case "23503": // foreign_key_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		case "23514": // check_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		}
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}

// IsUniqueViolation meldet, ob err eine Postgres unique-Verletzung ist.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

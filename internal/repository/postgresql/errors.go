package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// constraintName returns the violated constraint for a unique_violation
// error, or "" for any other error.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

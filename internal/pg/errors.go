package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

var (
	ErrEmptyConnectionString    = errors.New("pg: empty connection string, set PG_CONN_URL")
	ErrFailedToParseDBConfig    = errors.New("pg: failed to parse db config")
	ErrFailedToOpenDBConnection = errors.New("pg: failed to open db connection")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply migrations")
)

// IsDuplicateKeyError reports whether err is a unique constraint violation.
// When constraint is non-empty the violated constraint name must match too.
func IsDuplicateKeyError(err error, constraint ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	if len(constraint) == 0 || constraint[0] == "" {
		return true
	}
	return pgErr.ConstraintName == constraint[0]
}

package postgres

import (
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
)

// integrity_constraint_violation class in PostgreSQL
const pgConstraintClass = "23"

// isConstraintViolation reports whether err is a NOT NULL, CHECK, UNIQUE or
// foreign key rejection from any of the supported drivers.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code.Class()) == pgConstraintClass
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgConstraintClass)
	}

	var liteErr *sqlite.Error
	if stderrors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}

	return false
}

// writeError classifies a failed write. Constraint failures are client errors.
func writeError(message string, err error) error {
	if isConstraintViolation(err) {
		return errors.Constraint(message, err)
	}
	return errors.DatabaseError(message, err)
}

// readError maps sql.ErrNoRows to a not found error.
func readError(message string, err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFound("Usuario")
	}
	return errors.DatabaseError(message, err)
}

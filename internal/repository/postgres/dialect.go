package postgres

import (
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DialectFor maps a driver name to its dialect.
func DialectFor(driver string) Dialect {
	if driver == "sqlite" {
		return DialectSQLite
	}
	return DialectPostgres
}

// Rebind rewrites ? placeholders into $n for PostgreSQL.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var Files embed.FS

// ForDriver returns the migrations for a database driver name.
// The pgx driver shares the postgres migrations.
func ForDriver(driver string) (fs.FS, error) {
	switch driver {
	case "sqlite":
		return fs.Sub(Files, "sqlite")
	case "postgres", "pgx":
		return fs.Sub(Files, "postgres")
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}

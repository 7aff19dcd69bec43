package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/pratik-mahalle/usuarios-api/internal/repository/postgres"
	"github.com/pratik-mahalle/usuarios-api/migrations"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is limited to one connection so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	fsys, err := migrations.ForDriver("sqlite")
	if err != nil {
		db.Close()
		t.Fatalf("Failed to load migrations: %v", err)
	}

	if _, err := postgres.RunMigrations(context.Background(), db, postgres.DialectSQLite, fsys); err != nil {
		db.Close()
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return db
}

// CleanupDB closes the test database
func CleanupDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}

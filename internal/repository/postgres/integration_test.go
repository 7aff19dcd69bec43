package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/usuarios-api/internal/repository/postgres"
	"github.com/pratik-mahalle/usuarios-api/internal/testutil"
	"github.com/pratik-mahalle/usuarios-api/migrations"
)

func TestUsuarioRepository_Postgres(t *testing.T) {
	pg := testutil.NewPostgresContainer(t)
	ctx := context.Background()

	// lib/pq and pgx share one server; migrations run once
	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			db, err := postgres.New(ctx, pg.DatabaseConfig(driver))
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })

			fsys, err := migrations.ForDriver(driver)
			require.NoError(t, err)
			_, err = postgres.RunMigrations(ctx, db, postgres.DialectPostgres, fsys)
			require.NoError(t, err)

			runRepositorySuite(t, func(t *testing.T) *postgres.Store {
				_, err := db.ExecContext(ctx, "TRUNCATE usuarios RESTART IDENTITY")
				require.NoError(t, err)
				return postgres.NewStore(db, postgres.DialectPostgres)
			})
		})
	}
}

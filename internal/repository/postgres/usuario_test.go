package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
	"github.com/pratik-mahalle/usuarios-api/internal/repository/postgres"
	"github.com/pratik-mahalle/usuarios-api/internal/testutil"
)

func newSQLiteStore(t *testing.T) *postgres.Store {
	t.Helper()
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.CleanupDB(db) })
	return postgres.NewStore(db, postgres.DialectSQLite)
}

func TestUsuarioRepository_SQLite(t *testing.T) {
	runRepositorySuite(t, newSQLiteStore)
}

// runRepositorySuite checks the repository contract against any backend.
// newStore must return an empty store.
func runRepositorySuite(t *testing.T, newStore func(t *testing.T) *postgres.Store) {
	t.Run("create then get returns identical fields", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		u := &usuario.Usuario{Nombre: "Ana", Email: "ana@x.com"}
		require.NoError(t, repo.Create(ctx, u))

		assert.NotZero(t, u.ID)
		assert.False(t, u.Premium)
		assert.Equal(t, usuario.EstadoActivo, u.Estado)
		assert.False(t, u.FechaCreacion.IsZero())
		assert.Equal(t, u.FechaCreacion, u.FechaModificacion)

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("create honours explicit estado and premium", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		u := &usuario.Usuario{Nombre: "Luis", Email: "luis@x.com", Premium: true, Estado: usuario.EstadoInactivo}
		require.NoError(t, repo.Create(ctx, u))

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, got.Premium)
		assert.Equal(t, usuario.EstadoInactivo, got.Estado)
	})

	t.Run("duplicate email is a constraint violation", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &usuario.Usuario{Nombre: "Ana", Email: "ana@x.com"}))
		err := repo.Create(ctx, &usuario.Usuario{Nombre: "Otra Ana", Email: "ana@x.com"})

		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeConstraint))
		assert.Equal(t, 400, errors.As(err, "").StatusCode)
	})

	t.Run("empty nombre is a constraint violation", func(t *testing.T) {
		repo := newStore(t).Usuarios()

		err := repo.Create(context.Background(), &usuario.Usuario{Nombre: "", Email: "x@x.com"})
		assert.True(t, errors.HasCode(err, errors.ErrCodeConstraint))
	})

	t.Run("get missing id is not found", func(t *testing.T) {
		repo := newStore(t).Usuarios()

		got, err := repo.GetByID(context.Background(), 999)
		assert.Nil(t, got)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("eliminado is invisible to every read", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		gone := &usuario.Usuario{Nombre: "Gone", Email: "gone@x.com", Premium: true}
		kept := &usuario.Usuario{Nombre: "Kept", Email: "kept@x.com", Premium: true}
		require.NoError(t, repo.Create(ctx, gone))
		require.NoError(t, repo.Create(ctx, kept))

		gone.Estado = usuario.EstadoEliminado
		require.NoError(t, repo.Update(ctx, gone))

		_, err := repo.GetByID(ctx, gone.ID)
		assert.True(t, errors.IsNotFound(err))

		premium := true
		filters := map[string]usuario.Filter{
			"all":             {},
			"activos":         {Estado: usuario.EstadoActivo},
			"premium activos": {Estado: usuario.EstadoActivo, Premium: &premium},
		}
		for name, f := range filters {
			users, err := repo.List(ctx, f)
			require.NoError(t, err, name)
			require.Len(t, users, 1, name)
			assert.Equal(t, kept.ID, users[0].ID, name)
		}

		// A hidden row cannot be updated again
		gone.Estado = usuario.EstadoActivo
		assert.True(t, errors.IsNotFound(repo.Update(ctx, gone)))
	})

	t.Run("update missing id is not found", func(t *testing.T) {
		repo := newStore(t).Usuarios()

		err := repo.Update(context.Background(), &usuario.Usuario{ID: 42, Nombre: "x", Email: "x@x.com", Estado: usuario.EstadoActivo})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("update stamps fecha_modificacion only", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		u := &usuario.Usuario{Nombre: "Ana", Email: "ana@x.com"}
		require.NoError(t, repo.Create(ctx, u))
		created := u.FechaCreacion

		u.Estado = usuario.EstadoInactivo
		require.NoError(t, repo.Update(ctx, u))

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, usuario.EstadoInactivo, got.Estado)
		assert.Equal(t, created, got.FechaCreacion)
		assert.False(t, got.FechaModificacion.Before(created))
		assert.Equal(t, u.FechaModificacion, got.FechaModificacion)
	})

	t.Run("premium activos is the exact intersection", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		seed := []*usuario.Usuario{
			{Nombre: "a", Email: "a@x.com", Premium: true, Estado: usuario.EstadoActivo},
			{Nombre: "b", Email: "b@x.com", Premium: false, Estado: usuario.EstadoActivo},
			{Nombre: "c", Email: "c@x.com", Premium: true, Estado: usuario.EstadoInactivo},
			{Nombre: "d", Email: "d@x.com", Premium: false, Estado: usuario.EstadoInactivo},
			{Nombre: "e", Email: "e@x.com", Premium: true, Estado: usuario.EstadoActivo},
		}
		for _, u := range seed {
			require.NoError(t, repo.Create(ctx, u))
		}

		premium := true
		users, err := repo.List(ctx, usuario.Filter{Estado: usuario.EstadoActivo, Premium: &premium})
		require.NoError(t, err)

		var ids []int64
		for _, u := range users {
			assert.True(t, u.PremiumActivo())
			ids = append(ids, u.ID)
		}
		assert.Equal(t, []int64{seed[0].ID, seed[4].ID}, ids)

		activos, err := repo.List(ctx, usuario.Filter{Estado: usuario.EstadoActivo})
		require.NoError(t, err)
		assert.Len(t, activos, 3)

		all, err := repo.List(ctx, usuario.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("list on empty table returns empty slice", func(t *testing.T) {
		repo := newStore(t).Usuarios()

		users, err := repo.List(context.Background(), usuario.Filter{})
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("count by estado includes eliminado rows", func(t *testing.T) {
		repo := newStore(t).Usuarios()
		ctx := context.Background()

		for i, e := range []usuario.Estado{usuario.EstadoActivo, usuario.EstadoActivo, usuario.EstadoEliminado} {
			u := &usuario.Usuario{Nombre: "n", Email: string(rune('a'+i)) + "@x.com", Estado: e}
			require.NoError(t, repo.Create(ctx, u))
		}

		counts, err := repo.CountByEstado(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[usuario.Estado]int64{
			usuario.EstadoActivo:    2,
			usuario.EstadoInactivo:  0,
			usuario.EstadoEliminado: 1,
		}, counts)
	})

	t.Run("within tx commits on success", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		var id int64
		err := store.WithinTx(ctx, func(repo usuario.Repository) error {
			u := &usuario.Usuario{Nombre: "Ana", Email: "ana@x.com"}
			if err := repo.Create(ctx, u); err != nil {
				return err
			}
			id = u.ID
			return nil
		})
		require.NoError(t, err)

		_, err = store.Usuarios().GetByID(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("within tx rolls back on error", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		u := &usuario.Usuario{Nombre: "Ana", Email: "ana@x.com"}
		require.NoError(t, store.Usuarios().Create(ctx, u))

		boom := errors.BadRequest("boom")
		err := store.WithinTx(ctx, func(repo usuario.Repository) error {
			changed := *u
			changed.Estado = usuario.EstadoInactivo
			changed.Premium = true
			if err := repo.Update(ctx, &changed); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.Usuarios().GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("within tx rolls back on panic", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		assert.Panics(t, func() {
			_ = store.WithinTx(ctx, func(repo usuario.Repository) error {
				_ = repo.Create(ctx, &usuario.Usuario{Nombre: "Ana", Email: "ana@x.com"})
				panic("boom")
			})
		})

		users, err := store.Usuarios().List(ctx, usuario.Filter{})
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

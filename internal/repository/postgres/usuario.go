package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/metrics"
)

const usuarioColumns = `id, nombre, email, premium, estado, fecha_creacion, fecha_modificacion`

// UsuarioRepository implements usuario.Repository
type UsuarioRepository struct {
	q       querier
	dialect Dialect
}

// NewUsuarioRepository creates a repository that runs directly on q
func NewUsuarioRepository(q querier, dialect Dialect) usuario.Repository {
	return &UsuarioRepository{q: q, dialect: dialect}
}

// now is truncated to the stored precision so that returned and
// re-read values compare equal.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create inserts a new user
func (r *UsuarioRepository) Create(ctx context.Context, u *usuario.Usuario) error {
	defer observe("create", time.Now())

	if u.Estado == "" {
		u.Estado = usuario.EstadoActivo
	}
	ts := now()

	query := `
		INSERT INTO usuarios (nombre, email, premium, estado, fecha_creacion, fecha_modificacion)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.q.QueryRowContext(ctx, r.dialect.Rebind(query),
		u.Nombre, u.Email, u.Premium, string(u.Estado), ts.UnixMilli(), ts.UnixMilli(),
	).Scan(&u.ID)
	if err != nil {
		return writeError("Failed to create user", err)
	}

	u.FechaCreacion = ts
	u.FechaModificacion = ts
	return nil
}

// GetByID retrieves a visible user by ID
func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	defer observe("get", time.Now())

	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = ? AND estado <> ?`

	u, err := scanUsuario(r.q.QueryRowContext(ctx, r.dialect.Rebind(query), id, string(usuario.EstadoEliminado)))
	if err != nil {
		return nil, readError("Failed to get user", err)
	}
	return u, nil
}

// List retrieves visible users matching the filter, ordered by id
func (r *UsuarioRepository) List(ctx context.Context, filter usuario.Filter) ([]*usuario.Usuario, error) {
	defer observe("list", time.Now())

	conds := []string{"estado <> ?"}
	args := []any{string(usuario.EstadoEliminado)}

	if filter.Estado != "" {
		conds = append(conds, "estado = ?")
		args = append(args, string(filter.Estado))
	}
	if filter.Premium != nil {
		conds = append(conds, "premium = ?")
		args = append(args, *filter.Premium)
	}

	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY id`

	rows, err := r.q.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list users", err)
	}
	defer rows.Close()

	users := make([]*usuario.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan user", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate users", err)
	}

	return users, nil
}

// Update persists u. Only rows that are still visible can be updated.
func (r *UsuarioRepository) Update(ctx context.Context, u *usuario.Usuario) error {
	defer observe("update", time.Now())

	ts := now()
	if ts.Before(u.FechaCreacion) {
		ts = u.FechaCreacion
	}

	query := `
		UPDATE usuarios
		SET nombre = ?, email = ?, premium = ?, estado = ?, fecha_modificacion = ?
		WHERE id = ? AND estado <> ?
	`

	result, err := r.q.ExecContext(ctx, r.dialect.Rebind(query),
		u.Nombre, u.Email, u.Premium, string(u.Estado), ts.UnixMilli(),
		u.ID, string(usuario.EstadoEliminado),
	)
	if err != nil {
		return writeError("Failed to update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Usuario")
	}

	u.FechaModificacion = ts
	return nil
}

// CountByEstado counts rows per state
func (r *UsuarioRepository) CountByEstado(ctx context.Context) (map[usuario.Estado]int64, error) {
	defer observe("count", time.Now())

	rows, err := r.q.QueryContext(ctx, `SELECT estado, COUNT(*) FROM usuarios GROUP BY estado`)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count users", err)
	}
	defer rows.Close()

	counts := make(map[usuario.Estado]int64, len(usuario.Estados))
	for _, e := range usuario.Estados {
		counts[e] = 0
	}
	for rows.Next() {
		var estado string
		var n int64
		if err := rows.Scan(&estado, &n); err != nil {
			return nil, errors.DatabaseError("Failed to scan count", err)
		}
		counts[usuario.Estado(estado)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate counts", err)
	}
	return counts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUsuario(s scanner) (*usuario.Usuario, error) {
	var u usuario.Usuario
	var estado string
	var createdAt, updatedAt int64

	if err := s.Scan(&u.ID, &u.Nombre, &u.Email, &u.Premium, &estado, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	u.Estado = usuario.Estado(estado)
	u.FechaCreacion = time.UnixMilli(createdAt).UTC()
	u.FechaModificacion = time.UnixMilli(updatedAt).UTC()
	return &u, nil
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, "usuarios", time.Since(start))
}

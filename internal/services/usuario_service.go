package services

import (
	"context"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/logger"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/metrics"
)

// UsuarioService implements usuario.Service
type UsuarioService struct {
	store  usuario.Store
	logger *logger.Logger
}

// NewUsuarioService creates a new user service
func NewUsuarioService(store usuario.Store, log *logger.Logger) usuario.Service {
	return &UsuarioService{
		store:  store,
		logger: log,
	}
}

// CreateUser creates a new user
func (s *UsuarioService) CreateUser(ctx context.Context, params usuario.CreateParams) (*usuario.Usuario, error) {
	estado := params.Estado
	if estado == "" {
		estado = usuario.EstadoActivo
	}
	if !estado.Valid() {
		return nil, errors.BadRequest("estado inválido: " + string(estado))
	}

	u := &usuario.Usuario{
		Nombre:  params.Nombre,
		Email:   params.Email,
		Premium: params.Premium,
		Estado:  estado,
	}

	err := s.store.WithinTx(ctx, func(repo usuario.Repository) error {
		return repo.Create(ctx, u)
	})
	metrics.RecordUserOperation("create", err)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create user")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
		"estado":  u.Estado,
	}).Info("User created")

	return u, nil
}

// GetAllUsers returns every user that is not ELIMINADO
func (s *UsuarioService) GetAllUsers(ctx context.Context) ([]*usuario.Usuario, error) {
	return s.store.Usuarios().List(ctx, usuario.Filter{})
}

// GetUserByID retrieves a visible user by ID
func (s *UsuarioService) GetUserByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	return s.store.Usuarios().GetByID(ctx, id)
}

// UpdateUserStatus moves a user to a new state. Any transition is allowed.
func (s *UsuarioService) UpdateUserStatus(ctx context.Context, id int64, estado usuario.Estado) (*usuario.Usuario, error) {
	if !estado.Valid() {
		return nil, errors.BadRequest("estado inválido: " + string(estado))
	}

	u, err := s.mutate(ctx, id, func(u *usuario.Usuario) {
		u.Estado = estado
	})
	metrics.RecordUserOperation("update_status", err)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": id,
		"estado":  estado,
	}).Info("User status updated")

	return u, nil
}

// UpgradeToPremium marks a user as premium. Applying it twice is a no-op
// apart from the modification time.
func (s *UsuarioService) UpgradeToPremium(ctx context.Context, id int64) (*usuario.Usuario, error) {
	u, err := s.mutate(ctx, id, func(u *usuario.Usuario) {
		u.Premium = true
	})
	metrics.RecordUserOperation("upgrade_premium", err)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": id,
	}).Info("User upgraded to premium")

	return u, nil
}

// GetActiveUsers returns ACTIVO users
func (s *UsuarioService) GetActiveUsers(ctx context.Context) ([]*usuario.Usuario, error) {
	return s.store.Usuarios().List(ctx, usuario.Filter{Estado: usuario.EstadoActivo})
}

// GetPremiumActiveUsers returns users that are premium and ACTIVO
func (s *UsuarioService) GetPremiumActiveUsers(ctx context.Context) ([]*usuario.Usuario, error) {
	premium := true
	return s.store.Usuarios().List(ctx, usuario.Filter{
		Estado:  usuario.EstadoActivo,
		Premium: &premium,
	})
}

// DeleteUser soft-deletes a user
func (s *UsuarioService) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.mutate(ctx, id, func(u *usuario.Usuario) {
		u.Estado = usuario.EstadoEliminado
	})
	metrics.RecordUserOperation("delete", err)
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": id,
	}).Info("User soft-deleted")

	return nil
}

// CountByEstado returns how many rows exist in each state
func (s *UsuarioService) CountByEstado(ctx context.Context) (map[usuario.Estado]int64, error) {
	return s.store.Usuarios().CountByEstado(ctx)
}

// mutate loads a visible user, applies change and saves it in one transaction.
func (s *UsuarioService) mutate(ctx context.Context, id int64, change func(u *usuario.Usuario)) (*usuario.Usuario, error) {
	var out *usuario.Usuario

	err := s.store.WithinTx(ctx, func(repo usuario.Repository) error {
		u, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		change(u)
		if err := repo.Update(ctx, u); err != nil {
			return err
		}

		out = u
		return nil
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			s.logger.WithFields(map[string]interface{}{
				"user_id": id,
			}).ErrorWithErr(err, "Failed to update user")
		}
		return nil, err
	}

	return out, nil
}

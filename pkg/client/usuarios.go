package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// UsuarioService handles user-related API calls
type UsuarioService struct {
	client *Client
}

// List retrieves every visible user
func (s *UsuarioService) List(ctx context.Context) ([]Usuario, error) {
	return s.list(ctx, "/usuarios/")
}

// ListActivos retrieves ACTIVO users
func (s *UsuarioService) ListActivos(ctx context.Context) ([]Usuario, error) {
	return s.list(ctx, "/usuarios/activos/")
}

// ListPremiumActivos retrieves premium ACTIVO users
func (s *UsuarioService) ListPremiumActivos(ctx context.Context) ([]Usuario, error) {
	return s.list(ctx, "/usuarios/premium/activos/")
}

// Get retrieves a user by ID
func (s *UsuarioService) Get(ctx context.Context, id int64) (*Usuario, error) {
	var u Usuario
	if err := s.client.doRequest(ctx, http.MethodGet, usuarioPath(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user
func (s *UsuarioService) Create(ctx context.Context, req CreateUsuarioRequest) (*Usuario, error) {
	var u Usuario
	if err := s.client.doRequest(ctx, http.MethodPost, "/usuarios/", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateEstado moves a user to estado
func (s *UsuarioService) UpdateEstado(ctx context.Context, id int64, estado string) (*Usuario, error) {
	query := url.Values{}
	query.Set("nuevo_estado", estado)

	var u Usuario
	path := usuarioPath(id) + "/estado?" + query.Encode()
	if err := s.client.doRequest(ctx, http.MethodPatch, path, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpgradePremium marks a user as premium
func (s *UsuarioService) UpgradePremium(ctx context.Context, id int64) (*Usuario, error) {
	var u Usuario
	if err := s.client.doRequest(ctx, http.MethodPatch, usuarioPath(id)+"/premium", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete soft-deletes a user
func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, usuarioPath(id), nil, nil)
}

func (s *UsuarioService) list(ctx context.Context, path string) ([]Usuario, error) {
	var users []Usuario
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func usuarioPath(id int64) string {
	return fmt.Sprintf("/usuarios/%d", id)
}

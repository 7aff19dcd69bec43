package dto

import (
	"strings"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
)

// CreateUsuarioRequest represents a create user request. Fields come from
// the query string or, when none are given there, from a JSON body.
type CreateUsuarioRequest struct {
	Nombre  string `json:"nombre" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
	Premium bool   `json:"premium"`
	Estado  string `json:"estado,omitempty" validate:"omitempty,estado"`
}

// ToParams converts the request into service parameters.
// It must only be called after validation.
func (r CreateUsuarioRequest) ToParams() usuario.CreateParams {
	params := usuario.CreateParams{
		Nombre:  r.Nombre,
		Email:   r.Email,
		Premium: r.Premium,
	}
	if r.Estado != "" {
		params.Estado = usuario.Estado(strings.ToUpper(strings.TrimSpace(r.Estado)))
	}
	return params
}

// UpdateEstadoRequest represents a state transition request
type UpdateEstadoRequest struct {
	NuevoEstado string `json:"nuevo_estado" validate:"required,estado"`
}

// Estado returns the parsed target state
func (r UpdateEstadoRequest) Estado() (usuario.Estado, error) {
	return usuario.ParseEstado(r.NuevoEstado)
}

package client

import "time"

// Usuario is a user record as returned by the API
type Usuario struct {
	ID                int64     `json:"id" yaml:"id"`
	Nombre            string    `json:"nombre" yaml:"nombre"`
	Email             string    `json:"email" yaml:"email"`
	Premium           bool      `json:"premium" yaml:"premium"`
	Estado            string    `json:"estado" yaml:"estado"`
	FechaCreacion     time.Time `json:"fecha_creacion" yaml:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion" yaml:"fecha_modificacion"`
}

// CreateUsuarioRequest represents a request to create a user
type CreateUsuarioRequest struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Premium bool   `json:"premium"`
	Estado  string `json:"estado,omitempty"`
}

// HealthResponse represents the health probe body
type HealthResponse struct {
	Status   string `json:"status" yaml:"status"`
	Database string `json:"database,omitempty" yaml:"database,omitempty"`
}

// MessageResponse represents the informational endpoints body
type MessageResponse struct {
	Message string `json:"message" yaml:"message"`
}

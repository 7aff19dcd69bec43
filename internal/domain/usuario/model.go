package usuario

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Estado is the lifecycle state of a user. It is persisted as its label.
type Estado string

// Lifecycle states
const (
	EstadoActivo    Estado = "ACTIVO"
	EstadoInactivo  Estado = "INACTIVO"
	EstadoEliminado Estado = "ELIMINADO"
)

// Estados lists every valid state in declaration order.
var Estados = []Estado{EstadoActivo, EstadoInactivo, EstadoEliminado}

// ParseEstado parses a state label, ignoring case and surrounding spaces.
func ParseEstado(s string) (Estado, error) {
	e := Estado(strings.ToUpper(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("estado inválido %q: debe ser uno de ACTIVO, INACTIVO, ELIMINADO", s)
	}
	return e, nil
}

// Valid reports whether e is a known state.
func (e Estado) Valid() bool {
	switch e {
	case EstadoActivo, EstadoInactivo, EstadoEliminado:
		return true
	}
	return false
}

func (e Estado) String() string {
	return string(e)
}

// UnmarshalJSON accepts any casing of a known label.
func (e *Estado) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseEstado(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Usuario represents a user account
type Usuario struct {
	ID                int64     `json:"id"`
	Nombre            string    `json:"nombre"`
	Email             string    `json:"email"`
	Premium           bool      `json:"premium"`
	Estado            Estado    `json:"estado"`
	FechaCreacion     time.Time `json:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}

// Visible reports whether the user shows up in reads.
func (u *Usuario) Visible() bool {
	return u.Estado != EstadoEliminado
}

// PremiumActivo reports whether the user belongs to the premium active subset.
func (u *Usuario) PremiumActivo() bool {
	return u.Premium && u.Estado == EstadoActivo
}

// Filter narrows List results. ELIMINADO rows are never returned.
type Filter struct {
	Estado  Estado
	Premium *bool
}

// Matches reports whether u passes the filter.
func (f Filter) Matches(u *Usuario) bool {
	if !u.Visible() {
		return false
	}
	if f.Estado != "" && u.Estado != f.Estado {
		return false
	}
	if f.Premium != nil && u.Premium != *f.Premium {
		return false
	}
	return true
}

// CreateParams holds the input of a create operation.
type CreateParams struct {
	Nombre  string
	Email   string
	Premium bool
	// Estado defaults to ACTIVO when empty.
	Estado Estado
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/"})
}

func TestUsuarioService_Create(t *testing.T) {
	var got CreateUsuarioRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/usuarios/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Usuario{ID: 7, Nombre: got.Nombre, Email: got.Email, Premium: got.Premium, Estado: "ACTIVO"})
	})

	u, err := c.Usuarios().Create(context.Background(), CreateUsuarioRequest{Nombre: "Ana", Email: "ana@x.com", Premium: true})
	require.NoError(t, err)

	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "ACTIVO", u.Estado)
	assert.True(t, u.Premium)
}

func TestUsuarioService_UpdateEstado(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/usuarios/3/estado", r.URL.Path)
		assert.Equal(t, "INACTIVO", r.URL.Query().Get("nuevo_estado"))
		_ = json.NewEncoder(w).Encode(Usuario{ID: 3, Estado: "INACTIVO"})
	})

	u, err := c.Usuarios().UpdateEstado(context.Background(), 3, "INACTIVO")
	require.NoError(t, err)
	assert.Equal(t, "INACTIVO", u.Estado)
}

func TestUsuarioService_ListPaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"a","email":"a@x.com","premium":true,"estado":"ACTIVO"}]`))
	})

	ctx := context.Background()
	svc := c.Usuarios()

	for _, list := range []func(context.Context) ([]Usuario, error){svc.List, svc.ListActivos, svc.ListPremiumActivos} {
		users, err := list(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "a@x.com", users[0].Email)
	}

	assert.Equal(t, []string{"/usuarios/", "/usuarios/activos/", "/usuarios/premium/activos/"}, paths)
}

func TestUsuarioService_Delete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/usuarios/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Usuarios().Delete(context.Background(), 9))
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantDetail string
		check      func(*APIError) bool
	}{
		{
			name:       "not found",
			status:     http.StatusNotFound,
			body:       `{"detail":"Usuario no encontrado","code":"NOT_FOUND"}`,
			wantCode:   "NOT_FOUND",
			wantDetail: "Usuario no encontrado",
			check:      (*APIError).IsNotFound,
		},
		{
			name:       "validation",
			status:     http.StatusBadRequest,
			body:       `{"detail":"email is required","code":"VALIDATION_ERROR","details":[{"field":"email"}]}`,
			wantCode:   "VALIDATION_ERROR",
			wantDetail: "email is required",
			check:      (*APIError).IsValidationError,
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			body:       `{"detail":"slow down","code":"RATE_LIMITED"}`,
			wantCode:   "RATE_LIMITED",
			wantDetail: "slow down",
			check:      (*APIError).IsRateLimited,
		},
		{
			name:       "plain text body",
			status:     http.StatusBadGateway,
			body:       "upstream unavailable\n",
			wantDetail: "upstream unavailable",
			check:      (*APIError).IsServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Usuarios().Get(context.Background(), 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.True(t, tt.check(apiErr))
			assert.Equal(t, tt.status == http.StatusNotFound, IsNotFound(err))
		})
	}
}

func TestClient_Hello(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hello/Ana", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Hola Ana, bienvenido al sistema de usuarios"}`))
	})

	msg, err := c.Hello(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Hola Ana, bienvenido al sistema de usuarios", msg)
}

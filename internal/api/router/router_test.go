package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pratik-mahalle/usuarios-api/internal/api/handlers"
	"github.com/pratik-mahalle/usuarios-api/internal/api/middleware"
	"github.com/pratik-mahalle/usuarios-api/internal/config"
	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/logger"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/utils"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/validator"
	"github.com/pratik-mahalle/usuarios-api/internal/repository/postgres"
	"github.com/pratik-mahalle/usuarios-api/internal/services"
	"github.com/pratik-mahalle/usuarios-api/internal/testutil"
)

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) *httptest.Server {
	t.Helper()

	db := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.CleanupDB(db) })

	log := logger.Nop()
	store := postgres.NewStore(db, postgres.DialectSQLite)
	service := services.NewUsuarioService(store, log)

	cfg := &config.Config{
		Server:  config.ServerConfig{FrontendURL: "http://localhost:3000"},
		Metrics: config.MetricsConfig{Enabled: false},
	}

	h := &Handlers{
		Health:  handlers.NewHealthHandler(store, log),
		Root:    handlers.NewRootHandler(),
		Usuario: handlers.NewUsuarioHandler(service, log, validator.New()),
	}

	srv := httptest.NewServer(New(cfg, log, limiter, h))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// TestUsuarioLifecycle exercises Create -> List -> Update -> Premium -> Delete
// through the full middleware chain and a SQLite store.
func TestUsuarioLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)

	var created usuario.Usuario
	t.Run("Create", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/usuarios/?nombre=Ana&email=ana@x.com")
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		decode(t, resp, &created)
		if created.ID == 0 || created.Estado != usuario.EstadoActivo || created.Premium {
			t.Errorf("unexpected user: %+v", created)
		}
		if resp.Header.Get(middleware.RequestIDHeader) == "" {
			t.Error("response has no request id header")
		}
	})

	t.Run("List without trailing slash", func(t *testing.T) {
		resp := do(t, http.MethodGet, srv.URL+"/usuarios")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var users []usuario.Usuario
		decode(t, resp, &users)
		if len(users) != 1 || users[0].ID != created.ID {
			t.Errorf("users = %+v", users)
		}
	})

	t.Run("Premium activos empty", func(t *testing.T) {
		for _, path := range []string{"/usuarios/premium/activos", "/usuarios/premium/activos/"} {
			resp := do(t, http.MethodGet, srv.URL+path)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("%s: status = %d, want 200", path, resp.StatusCode)
			}
			var users []usuario.Usuario
			decode(t, resp, &users)
			if len(users) != 0 {
				t.Errorf("%s: got %d users, want 0", path, len(users))
			}
		}
	})

	t.Run("Upgrade premium", func(t *testing.T) {
		resp := do(t, http.MethodPatch, srv.URL+"/usuarios/1/premium")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		resp = do(t, http.MethodGet, srv.URL+"/usuarios/premium/activos/")
		var users []usuario.Usuario
		decode(t, resp, &users)
		if len(users) != 1 || !users[0].Premium {
			t.Errorf("users = %+v", users)
		}
	})

	t.Run("Deactivate", func(t *testing.T) {
		resp := do(t, http.MethodPatch, srv.URL+"/usuarios/1/estado?nuevo_estado=INACTIVO")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var u usuario.Usuario
		decode(t, resp, &u)
		if u.Estado != usuario.EstadoInactivo {
			t.Errorf("estado = %v, want INACTIVO", u.Estado)
		}
		if u.FechaModificacion.Before(u.FechaCreacion) {
			t.Errorf("fecha_modificacion %v before fecha_creacion %v", u.FechaModificacion, u.FechaCreacion)
		}

		resp = do(t, http.MethodGet, srv.URL+"/usuarios/activos")
		var users []usuario.Usuario
		decode(t, resp, &users)
		if len(users) != 0 {
			t.Errorf("activos = %+v, want none", users)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		resp := do(t, http.MethodDelete, srv.URL+"/usuarios/1")
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", resp.StatusCode)
		}

		resp = do(t, http.MethodGet, srv.URL+"/usuarios/1")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("get after delete: status = %d, want 404", resp.StatusCode)
		}
		var errResp utils.ErrorResponse
		decode(t, resp, &errResp)
		if errResp.Detail != "Usuario no encontrado" {
			t.Errorf("detail = %q", errResp.Detail)
		}
	})
}

func TestRouter_Fallbacks(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "welcome", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK, expectedBody: "API de Gestión de Usuarios"},
		{name: "hello", method: http.MethodGet, path: "/hello/Ana", expectedStatus: http.StatusOK, expectedBody: "Hola Ana"},
		{name: "healthz", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK, expectedBody: `"ok"`},
		{name: "readyz", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound, expectedBody: `"detail":"Not Found"`},
		{name: "method not allowed", method: http.MethodPut, path: "/usuarios/1", expectedStatus: http.StatusMethodNotAllowed},
		{name: "non numeric id", method: http.MethodGet, path: "/usuarios/abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path)
			if resp.StatusCode != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.expectedStatus)
			}

			buf := new(strings.Builder)
			if _, err := io.Copy(buf, resp.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if tt.expectedBody != "" && !strings.Contains(buf.String(), tt.expectedBody) {
				t.Errorf("body %q does not contain %q", buf.String(), tt.expectedBody)
			}
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	srv := newTestServer(t, middleware.NewRateLimiter(0.001, 2))

	for i := 0; i < 2; i++ {
		if resp := do(t, http.MethodGet, srv.URL+"/healthz"); resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
	}

	resp := do(t, http.MethodGet, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
	var errResp utils.ErrorResponse
	decode(t, resp, &errResp)
	if errResp.Code != "RATE_LIMITED" {
		t.Errorf("code = %q, want RATE_LIMITED", errResp.Code)
	}
}

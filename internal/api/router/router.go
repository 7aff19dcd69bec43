package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pratik-mahalle/usuarios-api/docs"
	"github.com/pratik-mahalle/usuarios-api/internal/api/handlers"
	"github.com/pratik-mahalle/usuarios-api/internal/api/middleware"
	"github.com/pratik-mahalle/usuarios-api/internal/config"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/logger"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/metrics"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/utils"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Root    *handlers.RootHandler
	Usuario *handlers.UsuarioHandler
}

// New builds the HTTP handler. limiter may be nil to disable rate limiting.
func New(cfg *config.Config, log *logger.Logger, limiter *middleware.RateLimiter, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware)
	}
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	// Operational endpoints
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler())
	}

	r.Get("/", h.Root.Welcome)
	r.Get("/hello/{name}", h.Root.Hello)

	// Mounting also serves /usuarios without the trailing slash
	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", h.Usuario.List)
		r.Post("/", h.Usuario.Create)

		r.Get("/activos", h.Usuario.ListActivos)
		r.Get("/activos/", h.Usuario.ListActivos)
		r.Get("/premium/activos", h.Usuario.ListPremiumActivos)
		r.Get("/premium/activos/", h.Usuario.ListPremiumActivos)

		r.Get("/{id}", h.Usuario.Get)
		r.Delete("/{id}", h.Usuario.Delete)
		r.Patch("/{id}/estado", h.Usuario.UpdateEstado)
		r.Patch("/{id}/premium", h.Usuario.UpgradePremium)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorMessage(w, http.StatusNotFound, errors.ErrCodeNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorMessage(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method Not Allowed")
	})

	return r
}

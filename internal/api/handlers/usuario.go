package handlers

import (
	"context"
	"net/http"

	"github.com/pratik-mahalle/usuarios-api/internal/api/dto"
	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/logger"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/utils"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/validator"
)

// UsuarioHandler serves the /usuarios routes
type UsuarioHandler struct {
	service   usuario.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewUsuarioHandler(service usuario.Service, log *logger.Logger, val *validator.Validator) *UsuarioHandler {
	return &UsuarioHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Create creates a new user
// @Summary Create user
// @Description Create a user from query parameters or a JSON body
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param nombre query string false "Name"
// @Param email query string false "Email"
// @Param premium query bool false "Premium flag (default false)"
// @Param estado query string false "Initial state (default ACTIVO)"
// @Param body body dto.CreateUsuarioRequest false "Create request"
// @Success 201 {object} usuario.Usuario
// @Failure 400 {object} utils.ErrorResponse
// @Router /usuarios/ [post]
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUsuarioRequest

	q := r.URL.Query()
	if !q.Has("nombre") && !q.Has("email") && hasJSONBody(r) {
		if err := decodeJSON(r, &req); err != nil {
			writeAppError(w, err, "Invalid request body")
			return
		}
	} else {
		premium, err := parseBool("premium", q.Get("premium"))
		if err != nil {
			writeAppError(w, err, "Invalid premium flag")
			return
		}
		req = dto.CreateUsuarioRequest{
			Nombre:  q.Get("nombre"),
			Email:   q.Get("email"),
			Premium: premium,
			Estado:  q.Get("estado"),
		}
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError(validator.Summary(errs), errs))
		return
	}

	u, err := h.service.CreateUser(r.Context(), req.ToParams())
	if err != nil {
		writeAppError(w, err, "Failed to create user")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, u)
}

// List returns every visible user
// @Summary List users
// @Tags Usuarios
// @Produce json
// @Success 200 {array} usuario.Usuario
// @Failure 500 {object} utils.ErrorResponse
// @Router /usuarios/ [get]
func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.service.GetAllUsers)
}

// ListActivos returns ACTIVO users
// @Summary List active users
// @Tags Usuarios
// @Produce json
// @Success 200 {array} usuario.Usuario
// @Router /usuarios/activos/ [get]
func (h *UsuarioHandler) ListActivos(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.service.GetActiveUsers)
}

// ListPremiumActivos returns premium ACTIVO users
// @Summary List premium active users
// @Tags Usuarios
// @Produce json
// @Success 200 {array} usuario.Usuario
// @Router /usuarios/premium/activos/ [get]
func (h *UsuarioHandler) ListPremiumActivos(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.service.GetPremiumActiveUsers)
}

// Get returns a user by ID
// @Summary Get user
// @Tags Usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} usuario.Usuario
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UsuarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeAppError(w, err, "Invalid id")
		return
	}

	u, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		writeAppError(w, err, "Failed to get user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}

// UpdateEstado moves a user to another state
// @Summary Update user state
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param nuevo_estado query string false "ACTIVO, INACTIVO or ELIMINADO"
// @Param body body dto.UpdateEstadoRequest false "State request"
// @Success 200 {object} usuario.Usuario
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /usuarios/{id}/estado [patch]
func (h *UsuarioHandler) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeAppError(w, err, "Invalid id")
		return
	}

	req := dto.UpdateEstadoRequest{NuevoEstado: r.URL.Query().Get("nuevo_estado")}
	if req.NuevoEstado == "" && hasJSONBody(r) {
		if err := decodeJSON(r, &req); err != nil {
			writeAppError(w, err, "Invalid request body")
			return
		}
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError(validator.Summary(errs), errs))
		return
	}
	estado, err := req.Estado()
	if err != nil {
		utils.WriteError(w, errors.BadRequest(err.Error()))
		return
	}

	u, err := h.service.UpdateUserStatus(r.Context(), id, estado)
	if err != nil {
		writeAppError(w, err, "Failed to update user status")
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}

// UpgradePremium marks a user as premium
// @Summary Upgrade user to premium
// @Tags Usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} usuario.Usuario
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /usuarios/{id}/premium [patch]
func (h *UsuarioHandler) UpgradePremium(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeAppError(w, err, "Invalid id")
		return
	}

	u, err := h.service.UpgradeToPremium(r.Context(), id)
	if err != nil {
		writeAppError(w, err, "Failed to upgrade user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}

// Delete soft-deletes a user
// @Summary Delete user
// @Description Moves the user to ELIMINADO; the row is kept
// @Tags Usuarios
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeAppError(w, err, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UsuarioHandler) writeList(w http.ResponseWriter, r *http.Request, list func(ctx context.Context) ([]*usuario.Usuario, error)) {
	users, err := list(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list users")
		writeAppError(w, err, "Failed to list users")
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

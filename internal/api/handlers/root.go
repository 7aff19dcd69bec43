package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/usuarios-api/internal/pkg/utils"
)

const welcomeMessage = "API de Gestión de Usuarios"

// RootHandler serves the informational endpoints
type RootHandler struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Welcome returns the API banner
// @Summary Welcome
// @Tags Root
// @Produce json
// @Success 200 {object} utils.MessageResponse
// @Router / [get]
func (h *RootHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.MessageResponse{Message: welcomeMessage})
}

// Hello greets name
// @Summary Greeting
// @Tags Root
// @Produce json
// @Param name path string true "Name to greet"
// @Success 200 {object} utils.MessageResponse
// @Router /hello/{name} [get]
func (h *RootHandler) Hello(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	utils.WriteJSON(w, http.StatusOK, utils.MessageResponse{
		Message: "Hola " + name + ", bienvenido al sistema de usuarios",
	})
}

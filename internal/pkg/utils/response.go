package utils

import (
	"encoding/json"
	"net/http"

	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
)

// ErrorResponse is the body of every error response. Detail carries the
// human readable message, as clients of the original API expect.
type ErrorResponse struct {
	Detail  string      `json:"detail"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse is the body of the informational endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response from AppError
func WriteError(w http.ResponseWriter, err *errors.AppError) error {
	return WriteJSON(w, err.StatusCode, ErrorResponse{
		Detail:  err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}

// WriteErrorMessage writes a simple error message
func WriteErrorMessage(w http.ResponseWriter, status int, code, message string) error {
	return WriteJSON(w, status, ErrorResponse{
		Detail: message,
		Code:   code,
	})
}

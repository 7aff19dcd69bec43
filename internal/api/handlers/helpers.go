package handlers

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/utils"
)

// parseID reads the {id} URL parameter
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.BadRequest("id inválido: " + raw)
	}
	return id, nil
}

// parseBool accepts the usual truthy and falsy spellings
func parseBool(name, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "f", "no", "n", "off":
		return false, nil
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	}
	return false, errors.BadRequest(name + " debe ser un booleano: " + raw)
}

// hasJSONBody reports whether r carries a JSON payload
func hasJSONBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeJSON decodes the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		return errors.BadRequest("Invalid request body: " + err.Error())
	}
	return nil
}

// writeAppError writes err using its AppError status, or 500 otherwise
func writeAppError(w http.ResponseWriter, err error, fallback string) {
	utils.WriteError(w, errors.As(err, fallback))
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cause := stderrors.New("UNIQUE constraint failed: usuarios.email")

	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{name: "not found", err: NotFound("Usuario"), wantCode: ErrCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "bad request", err: BadRequest("id inválido"), wantCode: ErrCodeBadRequest, wantStatus: http.StatusBadRequest},
		{name: "validation", err: ValidationError("email is required", nil), wantCode: ErrCodeValidation, wantStatus: http.StatusBadRequest},
		{name: "constraint", err: Constraint("Failed to create user", cause), wantCode: ErrCodeConstraint, wantStatus: http.StatusBadRequest},
		{name: "database", err: DatabaseError("Failed to list users", cause), wantCode: ErrCodeDatabase, wantStatus: http.StatusInternalServerError},
		{name: "rate limited", err: RateLimited("slow down"), wantCode: ErrCodeRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "unavailable", err: ServiceUnavailable("db down"), wantCode: ErrCodeServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
		})
	}

	if msg := NotFound("Usuario").Message; msg != "Usuario no encontrado" {
		t.Errorf("NotFound message = %q", msg)
	}
	if !stderrors.Is(Constraint("Failed to create user", cause), cause) {
		t.Error("Constraint does not unwrap to its cause")
	}
}

func TestHasCodeAndAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound("Usuario"))

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped) = false")
	}
	if HasCode(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("HasCode(plain) = true")
	}

	if got := As(wrapped, "fallback"); got.Code != ErrCodeNotFound {
		t.Errorf("As(wrapped).Code = %q", got.Code)
	}

	internal := As(stderrors.New("boom"), "Failed to list users")
	if internal.Code != ErrCodeInternal || internal.StatusCode != http.StatusInternalServerError {
		t.Errorf("As(plain) = %+v", internal)
	}
	if internal.Message != "Failed to list users" {
		t.Errorf("As(plain).Message = %q", internal.Message)
	}
}
